// Package repository implements the store contract on PostgreSQL through the
// pgx stdlib driver. Short-code uniqueness is enforced by a UNIQUE constraint
// covering soft-deleted rows, so the allocator's regenerate loop is backed by
// the database rather than a check-then-insert race.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/storage"
)

func InitDB(ps string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTables := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS mappings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			long_url TEXT NOT NULL,
			short_code TEXT UNIQUE NOT NULL,
			owner_id UUID NOT NULL REFERENCES users(id),
			click_count BIGINT NOT NULL DEFAULT 0,
			expires_at TIMESTAMPTZ,
			is_deleted BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS click_events (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			mapping_id UUID NOT NULL REFERENCES mappings(id),
			country TEXT,
			city TEXT,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			referrer_source TEXT,
			device_type TEXT,
			device_name TEXT,
			device_version TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`

	_, err = db.Exec(createTables)
	if err != nil {
		logger.Fatal("cannot create tables", zap.Error(err))
	}

	return db
}

type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateRepository(db *sql.DB, logger *zap.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) CreateUser(ctx context.Context, u storage.UserRecord) (*storage.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO users(name, email) VALUES ($1, lower($2)) RETURNING id, name, email, created_at;",
		u.Name, u.Email,
	)

	var result storage.UserRecord
	err := row.Scan(&result.ID, &result.Name, &result.Email, &result.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrConflict
		}
		r.logger.Error("CreateUser", zap.Error(err))
		return nil, err
	}

	return &result, nil
}

func (r *Repository) FindUserByID(ctx context.Context, id string) (*storage.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, created_at FROM users WHERE id = $1;", id)

	var result storage.UserRecord
	err := row.Scan(&result.ID, &result.Name, &result.Email, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("FindUserByID", zap.Error(err))
		return nil, err
	}

	return &result, nil
}

const mappingColumns = "id, long_url, short_code, owner_id, click_count, expires_at, is_deleted, created_at"

func scanMapping(row *sql.Row) (*storage.MappingRecord, error) {
	var result storage.MappingRecord
	var expiresAt sql.NullTime

	err := row.Scan(&result.ID, &result.LongURL, &result.ShortCode, &result.OwnerID,
		&result.ClickCount, &expiresAt, &result.IsDeleted, &result.CreatedAt)
	if err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		result.ExpiresAt = &expiresAt.Time
	}
	return &result, nil
}

func (r *Repository) CreateMapping(ctx context.Context, m storage.MappingRecord) (*storage.MappingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO mappings(long_url, short_code, owner_id, expires_at) VALUES ($1, $2, $3, $4) RETURNING "+mappingColumns+";",
		m.LongURL, m.ShortCode, m.OwnerID, m.ExpiresAt,
	)

	result, err := scanMapping(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrCodeTaken
		}
		r.logger.Error("CreateMapping", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (r *Repository) FindMappingByShort(ctx context.Context, short string) (*storage.MappingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+mappingColumns+" FROM mappings WHERE short_code = $1 AND is_deleted = false;", short)

	result, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("FindMappingByShort", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (r *Repository) FindMappingByOwnerAndLong(ctx context.Context, ownerID, long string) (*storage.MappingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+mappingColumns+" FROM mappings WHERE owner_id = $1 AND long_url = $2 AND is_deleted = false LIMIT 1;",
		ownerID, long)

	result, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("FindMappingByOwnerAndLong", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (r *Repository) FindMappingsByOwner(ctx context.Context, ownerID string) ([]storage.MappingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+mappingColumns+" FROM mappings WHERE owner_id = $1 AND is_deleted = false;", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.MappingRecord, 0)
	for rows.Next() {
		var m storage.MappingRecord
		var expiresAt sql.NullTime

		err = rows.Scan(&m.ID, &m.LongURL, &m.ShortCode, &m.OwnerID,
			&m.ClickCount, &expiresAt, &m.IsDeleted, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		if expiresAt.Valid {
			m.ExpiresAt = &expiresAt.Time
		}

		records = append(records, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// IncrementClickCount bumps the counter in a single UPDATE so concurrent
// clicks cannot lose increments.
func (r *Repository) IncrementClickCount(ctx context.Context, short string) (*storage.MappingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE mappings SET click_count = click_count + 1 WHERE short_code = $1 AND is_deleted = false RETURNING "+mappingColumns+";",
		short)

	result, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("IncrementClickCount", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (r *Repository) SoftDeleteMapping(ctx context.Context, id, ownerID string) (*storage.MappingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE mappings SET is_deleted = true WHERE id = $1 AND owner_id = $2 RETURNING "+mappingColumns+";",
		id, ownerID)

	result, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		r.logger.Error("SoftDeleteMapping", zap.Error(err))
		return nil, err
	}

	return result, nil
}

const insertClick = `INSERT INTO click_events(mapping_id, country, city, latitude, longitude, referrer_source, device_type, device_name, device_version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;`

func clickArgs(c storage.ClickRecord) []any {
	var country, city, deviceType, deviceName, deviceVersion, referrer sql.NullString
	var latitude, longitude sql.NullFloat64

	if c.Geography != nil {
		country = sql.NullString{String: c.Geography.Country, Valid: true}
		city = sql.NullString{String: c.Geography.City, Valid: true}
		latitude = sql.NullFloat64{Float64: c.Geography.Latitude, Valid: true}
		longitude = sql.NullFloat64{Float64: c.Geography.Longitude, Valid: true}
	}
	if c.Device != nil {
		deviceType = sql.NullString{String: c.Device.Type, Valid: true}
		deviceName = sql.NullString{String: c.Device.Name, Valid: true}
		deviceVersion = sql.NullString{String: c.Device.Version, Valid: true}
	}
	if c.ReferrerSource != "" {
		referrer = sql.NullString{String: c.ReferrerSource, Valid: true}
	}

	return []any{c.MappingID, country, city, latitude, longitude, referrer, deviceType, deviceName, deviceVersion}
}

func (r *Repository) CreateClick(ctx context.Context, c storage.ClickRecord) (*storage.ClickRecord, error) {
	row := r.db.QueryRowContext(ctx, insertClick, clickArgs(c)...)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		r.logger.Error("CreateClick", zap.Error(err))
		return nil, err
	}

	return &c, nil
}

func (r *Repository) CreateClicks(ctx context.Context, cs []storage.ClickRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, c := range cs {
		if _, err = tx.ExecContext(ctx, insertClick, clickArgs(c)...); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("rollback failed", zap.Error(rbErr))
			}
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) FindClicksByMapping(ctx context.Context, mappingID string) ([]storage.ClickRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mapping_id, country, city, latitude, longitude, referrer_source, device_type, device_name, device_version, created_at
		 FROM click_events WHERE mapping_id = $1;`, mappingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]storage.ClickRecord, 0)
	for rows.Next() {
		var c storage.ClickRecord
		var country, city, referrer, deviceType, deviceName, deviceVersion sql.NullString
		var latitude, longitude sql.NullFloat64

		err = rows.Scan(&c.ID, &c.MappingID, &country, &city, &latitude, &longitude,
			&referrer, &deviceType, &deviceName, &deviceVersion, &c.CreatedAt)
		if err != nil {
			return nil, err
		}

		if country.Valid || city.Valid {
			c.Geography = &storage.Geography{
				Country:   country.String,
				City:      city.String,
				Latitude:  latitude.Float64,
				Longitude: longitude.Float64,
			}
		}
		if deviceType.Valid || deviceName.Valid {
			c.Device = &storage.DeviceInfo{
				Type:    deviceType.String,
				Name:    deviceName.String,
				Version: deviceVersion.String,
			}
		}
		c.ReferrerSource = referrer.String

		records = append(records, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository) CountStats(ctx context.Context) (*storage.Stats, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM mappings), (SELECT COUNT(*) FROM users);")

	var stats storage.Stats
	if err := row.Scan(&stats.URLs, &stats.Users); err != nil {
		r.logger.Error("CountStats", zap.Error(err))
		return nil, err
	}

	return &stats, nil
}

func (r *Repository) PingContext(c context.Context) error {
	return r.db.PingContext(c)
}

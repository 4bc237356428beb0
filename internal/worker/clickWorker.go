// Package worker flushes click events captured on the redirect path to the
// store in batches.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/storage"
)

type Repo interface {
	CreateClicks(context.Context, []storage.ClickRecord) error
}

const (
	flushInterval  = 10 * time.Second
	flushThreshold = 25
)

// ClickWorker accumulates click records from a channel and writes them out
// either every flushInterval or once flushThreshold records are pending.
// Records lost on shutdown are acceptable; analytics are advisory.
type ClickWorker struct {
	in     chan storage.ClickRecord
	logger *zap.Logger
	repo   Repo
}

func NewClickWorker(logger *zap.Logger, repo Repo) *ClickWorker {
	ch := make(chan storage.ClickRecord)

	return &ClickWorker{
		in:     ch,
		logger: logger,
		repo:   repo,
	}
}

func (w *ClickWorker) GetInChannel() chan<- storage.ClickRecord {
	return w.in
}

func (w *ClickWorker) FlushClicks() {
	w.logger.Info("click worker started")
	ticker := time.NewTicker(flushInterval)
	var pending []storage.ClickRecord

	flush := func() {
		w.logger.Info("flushing click records", zap.Int("count", len(pending)))
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := w.repo.CreateClicks(ctx, pending); err != nil {
			w.logger.Error("cannot flush click records", zap.Error(err))
		}
		pending = pending[:0]
	}

	for {
		select {
		case record := <-w.in:
			pending = append(pending, record)
			if len(pending) > flushThreshold {
				flush()
			}
		case <-ticker.C:
			if len(pending) == 0 {
				continue
			}
			flush()
		}
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shortlink-app/shortlink/internal/app/server"
	"github.com/shortlink-app/shortlink/internal/app/service"
	"github.com/shortlink-app/shortlink/internal/models"
	"github.com/shortlink-app/shortlink/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	log := zap.NewNop()
	codes := service.NewCodeGenerator(6)

	mappings := service.NewMapping(store, codes, log, "http://localhost:8080")
	clicks := service.NewClick(store, log)
	users := service.NewUser(store, log)

	ts := httptest.NewServer(server.Init("http://localhost:8080", log, "127.0.0.0/8", mappings, clicks, users))
	t.Cleanup(ts.Close)

	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path, body string) *http.Response {
	t.Helper()

	resp, err := ts.Client().Post(ts.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestShortenerFlow(t *testing.T) {
	ts := newTestServer(t)

	// Register a user.
	resp := postJSON(t, ts, "/api/users", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	resp.Body.Close()
	require.NotEmpty(t, user.ID)

	// Shorten a URL for that user.
	resp = postJSON(t, ts, "/api/url-shortener", `{"longUrl":"https://example.com/page","userId":"`+user.ID+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var mapping models.MappingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mapping))
	resp.Body.Close()
	require.Len(t, mapping.ShortCode, 6)
	assert.Equal(t, "http://localhost:8080/"+mapping.ShortCode, mapping.ShortURL)
	require.NotNil(t, mapping.Owner)
	assert.Equal(t, "ada@example.com", mapping.Owner.Email)

	// Repeating the request returns the same mapping.
	resp = postJSON(t, ts, "/api/url-shortener", `{"longUrl":"https://example.com/page","userId":"`+user.ID+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var repeat models.MappingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&repeat))
	resp.Body.Close()
	assert.Equal(t, mapping.ID, repeat.ID)
	assert.Equal(t, mapping.ShortCode, repeat.ShortCode)

	// Follow the short link without chasing the redirect.
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	redirectResp, err := client.Get(ts.URL + "/" + mapping.ShortCode)
	require.NoError(t, err)
	redirectResp.Body.Close()
	assert.Equal(t, http.StatusTemporaryRedirect, redirectResp.StatusCode)
	assert.Equal(t, "https://example.com/page", redirectResp.Header.Get("Location"))

	// Submit a click event through the analytics endpoint.
	resp = postJSON(t, ts, "/api/analytics", `{"shortCode":"`+mapping.ShortCode+`","referrerSource":"twitter","geography":{"country":"US"}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// The summary counts the submitted event and the redirect capture.
	resp, err = ts.Client().Get(ts.URL + "/api/analytics/summary/" + mapping.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.ClickSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	resp.Body.Close()
	assert.GreaterOrEqual(t, summary.TotalClicks, 1)
	assert.Equal(t, 1, summary.GeographicDistribution["US"])
	assert.Equal(t, 1, summary.ReferrerSources["twitter"])

	// Listing the owner's mappings shows the bumped click counter.
	resp, err = ts.Client().Get(ts.URL + "/api/url-shortener/user/" + user.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.MappingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ClickCount)

	// Delete the mapping; the short code stops resolving.
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/url-shortener/"+mapping.ID+"?userId="+user.ID, nil)
	require.NoError(t, err)
	resp, err = ts.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	redirectResp, err = client.Get(ts.URL + "/" + mapping.ShortCode)
	require.NoError(t, err)
	redirectResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, redirectResp.StatusCode)
}

func TestInternalStatsGuard(t *testing.T) {
	ts := newTestServer(t)

	// No X-Real-IP header.
	resp, err := ts.Client().Get(ts.URL + "/api/internal/stats")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Trusted address.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/internal/stats", nil)
	require.NoError(t, err)
	req.Header.Set("X-Real-IP", "127.0.0.1")

	resp, err = ts.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	assert.Equal(t, 0, stats.URLs)
	assert.Equal(t, 0, stats.Users)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

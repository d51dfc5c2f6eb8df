package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"killfeed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingKillfeed struct {
	events []*models.KillEvent
	err    error
}

func (r *recordingKillfeed) RecordKill(ctx context.Context, event *models.KillEvent) error {
	if r.err != nil {
		return r.err
	}
	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return nil
}

func postKill(t *testing.T, handler http.Handler, token, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestTelemetryServer_RecordKill(t *testing.T) {
	feed := &recordingKillfeed{}
	server := NewServer(":0", "secret", feed)

	rec := postKill(t, server.Handler(), "secret",
		"/guilds/42/servers/emerald-1/kills",
		`{"killer":"Hunter","victim":"Prey","weapon":"AK-74","distance":120.5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, feed.events, 1)

	event := feed.events[0]
	assert.Equal(t, int64(42), event.GuildID)
	assert.Equal(t, "emerald-1", event.ServerID)
	assert.Equal(t, "Hunter", event.Killer)
	assert.Equal(t, "Prey", event.Victim)
	assert.Equal(t, 120.5, event.Distance)
	assert.False(t, event.IsSuicide)
}

func TestTelemetryServer_RejectsBadToken(t *testing.T) {
	feed := &recordingKillfeed{}
	server := NewServer(":0", "secret", feed)

	rec := postKill(t, server.Handler(), "wrong",
		"/guilds/42/servers/emerald-1/kills", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postKill(t, server.Handler(), "",
		"/guilds/42/servers/emerald-1/kills", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Empty(t, feed.events)
}

func TestTelemetryServer_RejectsWithoutConfiguredToken(t *testing.T) {
	// An empty configured token closes the endpoint instead of opening it
	server := NewServer(":0", "", &recordingKillfeed{})

	rec := postKill(t, server.Handler(), "",
		"/guilds/42/servers/emerald-1/kills", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTelemetryServer_BadRequests(t *testing.T) {
	feed := &recordingKillfeed{}
	server := NewServer(":0", "secret", feed)

	rec := postKill(t, server.Handler(), "secret",
		"/guilds/notanumber/servers/emerald-1/kills", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postKill(t, server.Handler(), "secret",
		"/guilds/42/servers/emerald-1/kills", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, feed.events)
}

func TestTelemetryServer_IngestFailure(t *testing.T) {
	feed := &recordingKillfeed{err: assert.AnError}
	server := NewServer(":0", "secret", feed)

	rec := postKill(t, server.Handler(), "secret",
		"/guilds/42/servers/emerald-1/kills",
		`{"killer":"A","victim":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

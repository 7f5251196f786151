package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/infra"
)

func newTestCleaner(t *testing.T, handler http.Handler) (*MetadataCleaner, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.EnvConfig{}
	cfg.AI.APIURL = srv.URL
	cfg.AI.APIKey = "test-key"
	cfg.AI.Model = "test-model"

	envCfg := &config.EnvConfig{}
	envCfg.Environment.Mode = "development"

	return NewMetadataCleaner(infra.InitAIService(cfg), infra.InitLoggerClient(envCfg)), srv
}

func completionBody(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"content":%q}}]}`, content)
}

func TestCleanBothStagesSucceed(t *testing.T) {
	calls := 0
	cleaner, _ := newTestCleaner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, completionBody(`{"title":"Gajah","artists":["Tulus","Extra"]}`))
			return
		}
		fmt.Fprint(w, completionBody(`Here you go: {"title":"Gajah","artists":["Tulus"]}`))
	}))

	got := cleaner.Clean(context.Background(), "Tulus - Gajah (Official Music Video)")

	require.Equal(t, 2, calls)
	assert.Equal(t, "Gajah", got.Title)
	assert.Equal(t, []string{"Tulus"}, got.Artists)
}

func TestCleanStageTwoFailureKeepsStageOne(t *testing.T) {
	calls := 0
	cleaner, _ := newTestCleaner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, completionBody(`{"title":"Monokrom","artists":["Tulus"]}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	got := cleaner.Clean(context.Background(), "Tulus - Monokrom")

	require.Equal(t, 2, calls)
	assert.Equal(t, "Monokrom", got.Title)
	assert.Equal(t, []string{"Tulus"}, got.Artists)
}

func TestCleanStageOneFailureFallsBackToParser(t *testing.T) {
	calls := 0
	cleaner, _ := newTestCleaner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))

	got := cleaner.Clean(context.Background(), "Tulus & Raisa - Duet")

	require.Equal(t, 1, calls)
	assert.Equal(t, "Duet", got.Title)
	assert.Equal(t, []string{"Tulus", "Raisa"}, got.Artists)
}

func TestCleanMalformedCompletionFallsBackToParser(t *testing.T) {
	cleaner, _ := newTestCleaner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`no structured data here`))
	}))

	got := cleaner.Clean(context.Background(), "Tulus - Gajah")

	assert.Equal(t, "Gajah", got.Title)
	assert.Equal(t, []string{"Tulus"}, got.Artists)
}

func TestCleanDisabledUsesParser(t *testing.T) {
	envCfg := &config.EnvConfig{}
	envCfg.Environment.Mode = "development"
	cleaner := NewMetadataCleaner(infra.InitAIService(&config.EnvConfig{}), infra.InitLoggerClient(envCfg))

	got := cleaner.Clean(context.Background(), "Tulus - Gajah")

	assert.Equal(t, "Gajah", got.Title)
	assert.Equal(t, []string{"Tulus"}, got.Artists)
}

func TestCleanEmptyTitleInResultFallsBack(t *testing.T) {
	cleaner, _ := newTestCleaner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionBody(`{"title":"","artists":["Tulus"]}`))
	}))

	got := cleaner.Clean(context.Background(), "Tulus - Gajah")

	assert.Equal(t, "Gajah", got.Title)
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Recorder(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordMove(false)
	m.RecordMove(false)
	m.RecordMove(true)
	m.RecordQuestCompleted("Clear the alchemist's garden")
	m.RecordMonsterDefeated("Rat")
	m.RecordPlayerDefeated("Giant spider")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Moves.WithLabelValues("entered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues("denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuestsCompleted.WithLabelValues("Clear the alchemist's garden")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MonstersDefeated.WithLabelValues("Rat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlayerDeaths.WithLabelValues("Giant spider")))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/games/abc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/games/{id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight))
}

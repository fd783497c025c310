package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelQuest   = "quest"
	LabelMonster = "monster"
)

// Metrics holds the game and HTTP collectors.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	Moves            *prometheus.CounterVec
	QuestsCompleted  *prometheus.CounterVec
	MonstersDefeated *prometheus.CounterVec
	PlayerDeaths     *prometheus.CounterVec
}

var _ state.Recorder = (*Metrics)(nil)

// New registers every collector with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{LabelMethod, LabelPath, LabelStatus}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{LabelMethod, LabelPath}),
		HTTPRequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),
		Moves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "game_moves_total",
			Help: "Location transitions by result",
		}, []string{LabelResult}),
		QuestsCompleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "game_quests_completed_total",
			Help: "Quests completed",
		}, []string{LabelQuest}),
		MonstersDefeated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "game_monsters_defeated_total",
			Help: "Monsters defeated by players",
		}, []string{LabelMonster}),
		PlayerDeaths: f.NewCounterVec(prometheus.CounterOpts{
			Name: "game_player_deaths_total",
			Help: "Players killed, by monster",
		}, []string{LabelMonster}),
	}
}

func (m *Metrics) RecordMove(denied bool) {
	result := "entered"
	if denied {
		result = "denied"
	}
	m.Moves.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordQuestCompleted(quest string) {
	m.QuestsCompleted.WithLabelValues(quest).Inc()
}

func (m *Metrics) RecordMonsterDefeated(monster string) {
	m.MonstersDefeated.WithLabelValues(monster).Inc()
}

func (m *Metrics) RecordPlayerDefeated(monster string) {
	m.PlayerDeaths.WithLabelValues(monster).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware collects HTTP request metrics. Paths are labelled by chi
// route pattern so game ids do not become labels.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

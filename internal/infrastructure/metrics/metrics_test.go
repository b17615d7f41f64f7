package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Recorders(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordDerivation("session", 42)
	m.RecordDerivation("session", 10)
	m.RecordIntent("set_stack", nil)
	m.RecordIntent("set_stack", errors.New("bad"))
	m.SetActiveSessions(3)
	m.RecordQuoteIssued()
	m.RecordQuoteTransition("approved")
	m.RecordPayment("approved")

	if got := testutil.ToFloat64(m.Derivations.WithLabelValues("session")); got != 2 {
		t.Fatalf("expected 2 derivations, got %v", got)
	}
	if got := testutil.ToFloat64(m.Intents.WithLabelValues("set_stack", "rejected")); got != 1 {
		t.Fatalf("expected 1 rejected intent, got %v", got)
	}
	if got := testutil.ToFloat64(m.ActiveSessions); got != 3 {
		t.Fatalf("expected 3 active sessions, got %v", got)
	}
	if got := testutil.ToFloat64(m.QuotesIssued); got != 1 {
		t.Fatalf("expected 1 issued quote, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordDerivation("cli", 1)
	m.RecordIntent("x", nil)
	m.SetActiveSessions(1)
	m.RecordQuoteIssued()
	m.RecordQuoteTransition("approved")
	m.RecordPayment("approved")
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/ping", "200")); got != 1 {
		t.Fatalf("expected 1 request recorded, got %v", got)
	}
}

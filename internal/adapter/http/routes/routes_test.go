package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"webquote/internal/adapter/http/handlers"
	"webquote/internal/adapter/persistence/memory"
	"webquote/internal/domain/catalog"
	"webquote/internal/infrastructure/metrics"
	"webquote/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)
	cat := catalog.Default()

	repo, err := memory.NewSessionLRURepository(16)
	if err != nil {
		t.Fatalf("repo: %v", err)
	}
	sessions := usecase.NewSessionUseCase(repo, cat, m, nil)

	return NewRouter(Handlers{
		Catalog:  handlers.NewCatalogHandler(cat),
		Session:  handlers.NewSessionHandler(sessions),
		Quote:    handlers.NewQuoteHandler(nil, sessions),
		Payment:  handlers.NewDepositPaymentHandler(nil, false, nil),
		Metrics:  m,
		Gatherer: registry,
	}, nil)
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestRouter_PreviewAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	body := `{"category":"blog","stack":"template_cms"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusOK, w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "webquote_derivations_total") {
		t.Fatalf("expected derivation counter in metrics output")
	}
}

func TestRouter_SessionFlow(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/does-not-exist", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"webquote/internal/adapter/http/handlers/mocks"
	"webquote/internal/domain/entities"
	"webquote/internal/usecase"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *mocks.MockISessionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISessionUseCase(ctrl)
	h := NewSessionHandler(uc)

	r := gin.New()
	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions/:session_id", h.GetSession)
	r.DELETE("/sessions/:session_id", h.DeleteSession)
	r.PUT("/sessions/:session_id/category", h.SetCategory)
	r.PUT("/sessions/:session_id/stack", h.SetStack)
	r.PUT("/sessions/:session_id/hosting", h.SetHosting)
	r.POST("/sessions/:session_id/extras/:key/toggle", h.ToggleExtra)
	r.POST("/sessions/:session_id/plugins/:plugin_id/toggle", h.TogglePlugin)
	r.POST("/sessions/:session_id/support/:package_id/select", h.SelectSupportPackage)
	return r, uc
}

func TestSessionHandler_CreateSession(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().Create(gomock.Any()).Return(entities.Session{ID: "s1", State: entities.NewSelectionState()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusCreated, w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["session_id"] != "s1" {
		t.Fatalf("expected session_id s1, got %v", body["session_id"])
	}
}

func TestSessionHandler_GetSession_NotFound(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Session{}, usecase.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/sessions/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if !strings.Contains(w.Body.String(), "SESSION_NOT_FOUND") {
		t.Fatalf("expected SESSION_NOT_FOUND, got %s", w.Body.String())
	}
}

func TestSessionHandler_DeleteSession(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/sessions/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
}

func TestSessionHandler_SetCategory_Normalizes(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().SetCategory(gomock.Any(), "s1", entities.CategoryBlog).Return(entities.Session{ID: "s1"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/sessions/s1/category", strings.NewReader(`{"category":" Blog "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestSessionHandler_SetCategory_MissingField(t *testing.T) {
	r, _ := newSessionRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/sessions/s1/category", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionHandler_SetStack_Unknown(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().SetStack(gomock.Any(), "s1", entities.Stack("wix")).Return(entities.Session{}, usecase.ErrUnknownStack)

	req := httptest.NewRequest(http.MethodPut, "/sessions/s1/stack", strings.NewReader(`{"stack":"wix"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "UNKNOWN_OPTION") {
		t.Fatalf("expected UNKNOWN_OPTION, got %s", w.Body.String())
	}
}

func TestSessionHandler_SetHosting_ExplicitFalse(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().SetIncludeHosting(gomock.Any(), "s1", false).Return(entities.Session{ID: "s1"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/sessions/s1/hosting", strings.NewReader(`{"include_hosting":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestSessionHandler_TogglePlugin_Unavailable(t *testing.T) {
	r, uc := newSessionRouter(t)
	uc.EXPECT().TogglePlugin(gomock.Any(), "s1", "newsletter").Return(entities.Session{}, usecase.ErrPluginsUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/sessions/s1/plugins/newsletter/toggle", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if !strings.Contains(w.Body.String(), "PLUGINS_UNAVAILABLE") {
		t.Fatalf("expected PLUGINS_UNAVAILABLE, got %s", w.Body.String())
	}
}

func TestSessionHandler_ToggleExtraAndSupport(t *testing.T) {
	r, uc := newSessionRouter(t)
	gomock.InOrder(
		uc.EXPECT().ToggleExtra(gomock.Any(), "s1", entities.ExtraDesign).Return(entities.Session{ID: "s1"}, nil),
		uc.EXPECT().SelectSupportPackage(gomock.Any(), "s1", "pro").Return(entities.Session{ID: "s1"}, nil),
	)

	for _, path := range []string{"/sessions/s1/extras/design/toggle", "/sessions/s1/support/pro/select"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, w.Code)
		}
	}
}

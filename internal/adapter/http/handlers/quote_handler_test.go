package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"webquote/internal/adapter/http/handlers/mocks"
	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
	"webquote/internal/domain/quote"
	"webquote/internal/usecase"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase, *mocks.MockISessionUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	sessions := mocks.NewMockISessionUseCase(ctrl)
	h := NewQuoteHandler(uc, sessions)

	r := gin.New()
	r.POST("/quotes/preview", h.PreviewQuote)
	r.POST("/quotes", h.IssueQuote)
	r.GET("/quotes/:quote_id", h.GetQuote)
	r.PATCH("/quotes/:quote_id/approve", h.ApproveQuote)
	r.PATCH("/quotes/:quote_id/reject", h.RejectQuote)
	r.PATCH("/quotes/:quote_id/cancel", h.CancelQuote)
	return r, uc, sessions
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	r, _, sessions := newQuoteRouter(t)

	cat := catalog.Default()
	sessions.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, c quote.Choices) (entities.SelectionState, entities.Derivation, error) {
			if c.Category != entities.CategoryBlog || c.Stack != entities.StackTemplateCMS {
				t.Fatalf("unexpected choices: %+v", c)
			}
			s := quote.BuildSelection(c, cat)
			return s, quote.Derive(s, cat), nil
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/quotes/preview", strings.NewReader(`{"category":"blog","stack":"template_cms"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusOK, w.Code, w.Body.String())
	}
	var body struct {
		Quote struct {
			Total float64 `json:"total"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Quote.Total != 37.5 {
		t.Fatalf("expected total 37.5, got %v", body.Quote.Total)
	}
}

func TestQuoteHandler_IssueQuote(t *testing.T) {
	r, uc, _ := newQuoteRouter(t)
	uc.EXPECT().Issue(gomock.Any(), "s1", "Ana", "ana@example.com").Return(entities.Quote{
		ID:     "q1",
		Number: "INV-0042-2026",
		Status: entities.QuoteStatusPending,
		Total:  37.5,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"session_id":"s1","customer_name":"Ana","customer_contact":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d body=%s", http.StatusCreated, w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"number":"INV-0042-2026"`) {
		t.Fatalf("expected invoice number in body, got %s", w.Body.String())
	}
}

func TestQuoteHandler_IssueQuote_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "not ready", err: usecase.ErrQuoteNotReady, wantCode: http.StatusUnprocessableEntity, wantBody: "QUOTE_NOT_READY"},
		{name: "session missing", err: usecase.ErrSessionNotFound, wantCode: http.StatusNotFound, wantBody: "SESSION_NOT_FOUND"},
		{name: "storage", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc, _ := newQuoteRouter(t)
			uc.EXPECT().Issue(gomock.Any(), "s1", "", "").Return(entities.Quote{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"session_id":"s1"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("expected %s in body, got %s", tt.wantBody, w.Body.String())
			}
			if strings.Contains(w.Body.String(), "boom") {
				t.Fatalf("internal cause leaked: %s", w.Body.String())
			}
		})
	}
}

func TestQuoteHandler_IssueQuote_MissingSession(t *testing.T) {
	r, _, _ := newQuoteRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestQuoteHandler_Transitions(t *testing.T) {
	r, uc, _ := newQuoteRouter(t)
	uc.EXPECT().Approve(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusApproved}, nil)
	uc.EXPECT().Reject(gomock.Any(), "q1").Return(entities.Quote{}, usecase.ErrQuoteStatusConflict)
	uc.EXPECT().Cancel(gomock.Any(), "q2").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

	cases := []struct {
		path string
		want int
	}{
		{"/quotes/q1/approve", http.StatusOK},
		{"/quotes/q1/reject", http.StatusConflict},
		{"/quotes/q2/cancel", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPatch, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.path, tc.want, w.Code)
		}
	}
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	r, uc, _ := newQuoteRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusPending}, nil)

	req := httptest.NewRequest(http.MethodGet, "/quotes/q1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"quote_id":"q1"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

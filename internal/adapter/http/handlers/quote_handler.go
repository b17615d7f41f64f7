package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "webquote/internal/adapter/http/dto/request"
	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/entities"
	"webquote/internal/usecase"
)

// QuoteHandler handles previews and the lifecycle of issued quotes.
type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	sessions usecase.ISessionUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, sessions usecase.ISessionUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, sessions: sessions}
}

// PreviewQuote godoc
// @Summary      Derive a quote from a full selection
// @Description  Stateless: nothing is stored.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.PreviewQuoteRequest  true  "Selection"
// @Success      200   {object}  response.PreviewResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/preview [post]
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.PreviewQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	state, d, err := h.sessions.Preview(c.Request.Context(), payload.ToChoices())
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(state, d))
}

// IssueQuote godoc
// @Summary      Issue a quote from a session
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.IssueQuoteRequest  true  "Issue request"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) IssueQuote(c *gin.Context) {
	var payload request.IssueQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.Issue(c.Request.Context(), payload.SessionID, payload.CustomerName, payload.CustomerContact)
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary      Get an issued quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	h.respond(c, q, err)
}

// ApproveQuote godoc
// @Summary      Approve a pending quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	q, err := h.usecase.Approve(c.Request.Context(), c.Param("quote_id"))
	h.respond(c, q, err)
}

// RejectQuote godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	q, err := h.usecase.Reject(c.Request.Context(), c.Param("quote_id"))
	h.respond(c, q, err)
}

// CancelQuote godoc
// @Summary      Cancel a pending quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.QuoteResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	q, err := h.usecase.Cancel(c.Request.Context(), c.Param("quote_id"))
	h.respond(c, q, err)
}

func (h *QuoteHandler) respond(c *gin.Context, q entities.Quote, err error) {
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

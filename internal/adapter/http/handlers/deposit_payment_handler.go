package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/usecase"
)

// DepositPaymentHandler handles HTTP requests for quote deposits.
type DepositPaymentHandler struct {
	usecase  usecase.IDepositPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, mockMode bool, logger *zap.Logger) *DepositPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.Named("payment.handler")}
}

// CreateDepositByQuoteID godoc
// @Summary      Pay the deposit of an approved quote
// @Description  Accepts a bare Mercado Pago payment payload or one wrapped in mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string                                true  "Quote ID"
// @Param        body      body      request.DepositPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200       {object}  response.DepositPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [post]
func (h *DepositPaymentHandler) CreateDepositByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log := h.logger.With(zap.String("quote_id", quoteID))
	log.Debug("create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			abortWithError(c, errInvalidRequest)
			return
		}
		log.Debug("payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		log.Warn("create failed", zap.Error(err))
		abortWithError(c, mapDepositPaymentError(err))
		return
	}
	log.Info("create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDepositByQuoteID godoc
// @Summary      Get the latest deposit payment of a quote
// @Tags         payments
// @Produce      json
// @Param        quote_id  path      string  true  "Quote ID"
// @Success      200       {object}  response.DepositPaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /payments/{quote_id} [get]
func (h *DepositPaymentHandler) GetDepositByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		abortWithError(c, mapDepositPaymentError(err))
		return
	}
	if len(payments) == 0 {
		abortWithError(c, mapDepositPaymentError(usecase.ErrDepositPaymentNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

// GetDepositByID godoc
// @Summary      Get a deposit payment
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.DepositPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/by-id/{payment_id} [get]
func (h *DepositPaymentHandler) GetDepositByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		abortWithError(c, mapDepositPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			w := strings.TrimSpace(string(wrapped))
			if w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

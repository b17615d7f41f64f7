package routes

import (
	"github.com/gin-gonic/gin"

	"webquote/internal/adapter/http/handlers"
)

const (
	PathCatalog  = "/catalog"
	PathSessions = "/sessions"
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathCatalog, h.GetCatalog)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.DELETE("/:session_id", h.DeleteSession)
		sessions.PUT("/:session_id/category", h.SetCategory)
		sessions.PUT("/:session_id/stack", h.SetStack)
		sessions.PUT("/:session_id/hosting", h.SetHosting)
		sessions.POST("/:session_id/extras/:key/toggle", h.ToggleExtra)
		sessions.POST("/:session_id/plugins/:plugin_id/toggle", h.TogglePlugin)
		sessions.POST("/:session_id/automations/:option_id/toggle", h.ToggleAutomation)
		sessions.POST("/:session_id/content-services/:option_id/toggle", h.ToggleContentService)
		sessions.POST("/:session_id/support/:package_id/select", h.SelectSupportPackage)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.DepositPaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.POST("", quoteHandler.IssueQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:quote_id/cancel", quoteHandler.CancelQuote)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreateDepositByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetDepositByQuoteID)
		payments.GET("/by-id/:payment_id", paymentHandler.GetDepositByID)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "webquote/internal/adapter/http/dto/request"
	response "webquote/internal/adapter/http/dto/response"
	"webquote/internal/domain/entities"
	"webquote/internal/usecase"
)

// SessionHandler exposes the selection intents of a quote session.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// CreateSession godoc
// @Summary      Start a selection session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	s, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// GetSession godoc
// @Summary      Get a session with its current quote
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

// DeleteSession godoc
// @Summary      Discard a session
// @Tags         sessions
// @Param        session_id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("session_id")); err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetCategory godoc
// @Summary      Choose the site category
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session ID"
// @Param        body        body  request.SetCategoryRequest  true  "Category"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/category [put]
func (h *SessionHandler) SetCategory(c *gin.Context) {
	var payload request.SetCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.SetCategory(c.Request.Context(), c.Param("session_id"), entities.Category(payload.Normalized()))
	h.respond(c, s, err)
}

// SetStack godoc
// @Summary      Choose the technology stack
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                   true  "Session ID"
// @Param        body        body  request.SetStackRequest  true  "Stack"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/stack [put]
func (h *SessionHandler) SetStack(c *gin.Context) {
	var payload request.SetStackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.SetStack(c.Request.Context(), c.Param("session_id"), entities.Stack(payload.Normalized()))
	h.respond(c, s, err)
}

// SetHosting godoc
// @Summary      Include or exclude hosting
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                     true  "Session ID"
// @Param        body        body  request.SetHostingRequest  true  "Hosting"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/hosting [put]
func (h *SessionHandler) SetHosting(c *gin.Context) {
	var payload request.SetHostingRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IncludeHosting == nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	s, err := h.usecase.SetIncludeHosting(c.Request.Context(), c.Param("session_id"), *payload.IncludeHosting)
	h.respond(c, s, err)
}

// ToggleExtra godoc
// @Summary      Toggle a generic extra
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        key         path  string  true  "design | multilingual | content | storage"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/extras/{key}/toggle [post]
func (h *SessionHandler) ToggleExtra(c *gin.Context) {
	s, err := h.usecase.ToggleExtra(c.Request.Context(), c.Param("session_id"), entities.ExtraKey(c.Param("key")))
	h.respond(c, s, err)
}

// TogglePlugin godoc
// @Summary      Toggle an optional plugin
// @Description  Mandatory plugins are locked; toggling one leaves the selection unchanged.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        plugin_id   path  string  true  "Plugin ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/plugins/{plugin_id}/toggle [post]
func (h *SessionHandler) TogglePlugin(c *gin.Context) {
	s, err := h.usecase.TogglePlugin(c.Request.Context(), c.Param("session_id"), c.Param("plugin_id"))
	h.respond(c, s, err)
}

// ToggleAutomation godoc
// @Summary      Toggle an automation option
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        option_id   path  string  true  "Automation ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/automations/{option_id}/toggle [post]
func (h *SessionHandler) ToggleAutomation(c *gin.Context) {
	s, err := h.usecase.ToggleAutomation(c.Request.Context(), c.Param("session_id"), c.Param("option_id"))
	h.respond(c, s, err)
}

// ToggleContentService godoc
// @Summary      Toggle a content service
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        option_id   path  string  true  "Content service ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/content-services/{option_id}/toggle [post]
func (h *SessionHandler) ToggleContentService(c *gin.Context) {
	s, err := h.usecase.ToggleContentService(c.Request.Context(), c.Param("session_id"), c.Param("option_id"))
	h.respond(c, s, err)
}

// SelectSupportPackage godoc
// @Summary      Select a support package
// @Description  Selecting the current package again clears it.
// @Tags         sessions
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Param        package_id  path  string  true  "Support package ID"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{session_id}/support/{package_id}/select [post]
func (h *SessionHandler) SelectSupportPackage(c *gin.Context) {
	s, err := h.usecase.SelectSupportPackage(c.Request.Context(), c.Param("session_id"), c.Param("package_id"))
	h.respond(c, s, err)
}

func (h *SessionHandler) respond(c *gin.Context, s entities.Session, err error) {
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

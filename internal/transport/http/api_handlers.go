package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/proto"
)

// APIHandlers provides HTTP handlers for REST API endpoints.
type APIHandlers struct {
	engine core.Engine
	log    *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(eng core.Engine, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		engine: eng,
		log:    logger,
	}
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ItemsResponse lists the registered bar items.
type ItemsResponse struct {
	Items []string `json:"items"`
}

// ListItems returns the registered bar item names.
// GET /api/items
func (h *APIHandlers) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, ItemsResponse{Items: h.engine.Items()})
}

// GetItem composes one bar item for the buffer given in the query.
// 204 means the item has nothing to show.
// GET /api/items/:name?buffer=
func (h *APIHandlers) GetItem(c *gin.Context) {
	name := c.Param("name")
	buffer := c.Query("buffer")

	label, err := h.engine.Label(c.Request.Context(), name, buffer)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !label.Present {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, label)
}

// DescribeInfo lists the info and infolist hooks.
// GET /api/info
func (h *APIHandlers) DescribeInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Describe())
}

// GetInfo runs an info hook.
// GET /api/info/:name?args=
func (h *APIHandlers) GetInfo(c *gin.Context) {
	name := c.Param("name")
	value, err := h.engine.Info(c.Request.Context(), name, c.Query("args"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proto.InfoValue{Name: name, Value: value})
}

// GetInfolist runs an infolist hook.
// GET /api/infolist/:name?id=&args=
func (h *APIHandlers) GetInfolist(c *gin.Context) {
	name := c.Param("name")
	items, err := h.engine.Infolist(c.Request.Context(), name, c.Query("id"), c.Query("args"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proto.InfolistValue{Name: name, Items: items})
}

func (h *APIHandlers) writeError(c *gin.Context, err error) {
	ce := core.Classify(err)
	status := statusFor(ce.Code)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	} else {
		h.log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("request rejected")
	}
	c.JSON(status, ErrorResponse{Error: ce.Message, Code: ce.Code})
}

func statusFor(code string) int {
	switch code {
	case core.ErrCodeBadRequest, core.ErrCodeInvalidFilter:
		return http.StatusBadRequest
	case core.ErrCodeUnknownItem, core.ErrCodeUnknownBuffer, core.ErrCodeUnknownInfo, core.ErrCodeNotFound:
		return http.StatusNotFound
	case core.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case core.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case core.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

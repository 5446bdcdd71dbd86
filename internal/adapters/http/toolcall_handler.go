package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicedesk/core/internal/adapters/toolcall"
	"github.com/voicedesk/core/internal/infrastructure/logger"
)

// statusDeleted is the fixed success marker returned by delete operations.
var statusDeleted = map[string]string{"status": "deleted"}

// ToolCallHandler serves every voice-command route. The route path mirrors
// the expected function name, but dispatch is keyed by the name inside each
// tool call, so a request may in principle carry several calls.
type ToolCallHandler struct {
	dispatcher *toolcall.Dispatcher
	logger     *logger.Logger
}

// NewToolCallHandler creates the envelope-serving handler.
func NewToolCallHandler(dispatcher *toolcall.Dispatcher, logger *logger.Logger) *ToolCallHandler {
	return &ToolCallHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle unwraps the inbound envelope, dispatches its tool calls, and wraps
// the correlated results into the response envelope.
func (h *ToolCallHandler) Handle(c echo.Context) error {
	var env toolcall.Envelope
	if err := c.Bind(&env); err != nil {
		return respondError(c, toolcall.Errorf(toolcall.CodeInvalidRequest, "request body is not a valid tool-call envelope"))
	}

	if err := c.Validate(&env); err != nil {
		return respondError(c, toolcall.Errorf(toolcall.CodeInvalidRequest, "request contains no tool calls"))
	}

	out, err := h.dispatcher.Dispatch(c.Request().Context(), env.Message)
	if err != nil {
		te, ok := toolcall.AsError(err)
		if !ok {
			te = toolcall.Errorf(toolcall.CodeInternal, "%s", err.Error())
		}
		return respondError(c, te)
	}

	if out.Status() != http.StatusOK {
		h.logger.Warnw("Tool call failed",
			"path", c.Request().URL.Path,
			"status", out.Status(),
		)
	}

	return c.JSON(out.Status(), out.Envelope())
}

func respondError(c echo.Context, te *toolcall.Error) error {
	return c.JSON(te.HTTPStatus(), te)
}

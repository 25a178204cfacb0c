package rest

import (
	"context"
	"net/http"
	"shopReco/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// ReloadFunc re-reads the artifact and swaps the serving snapshot
// atomically. Wired up in main so the handler stays transport-only.
type ReloadFunc func(ctx context.Context) error

type AdminHandler struct {
	reload ReloadFunc
}

func NewAdminHandler(reload ReloadFunc) *AdminHandler {
	return &AdminHandler{
		reload: reload,
	}
}

func (h *AdminHandler) ReloadSnapshot(c echo.Context) error {
	if err := h.reload(c.Request().Context()); err != nil {
		logger.Error("snapshot reload failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	logger.Info("serving snapshot reloaded")
	return c.JSON(http.StatusOK, fres.Response.StatusOK("snapshot reloaded"))
}

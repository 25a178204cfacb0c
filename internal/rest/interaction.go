package rest

import (
	"context"
	"net/http"
	"shopReco/domain"
	"shopReco/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	InteractionRepository interface {
		SaveEvent(ctx context.Context, event domain.Interaction) error
	}

	InteractionHandler struct {
		validate        *validator.Validate
		interactionRepo InteractionRepository
	}

	InteractionRequest struct {
		UserID    string         `json:"user_id" validate:"required"`
		ProductID string         `json:"product_id" validate:"required"`
		EventType string         `json:"event_type" validate:"required,oneof=view purchase"`
		Context   map[string]any `json:"context"`
	}
)

func NewInteractionHandler(interactionRepo InteractionRepository) *InteractionHandler {
	return &InteractionHandler{
		validate:        validator.New(),
		interactionRepo: interactionRepo,
	}
}

func (h *InteractionHandler) Record(c echo.Context) error {
	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.Interaction{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		EventType: req.EventType,
		Context:   datatypes.JSONMap(req.Context),
	}

	if err := h.interactionRepo.SaveEvent(c.Request().Context(), event); err != nil {
		logger.Error("failed to record interaction", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("interaction recorded"))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/CollabR18X/CollabR18X/api/middleware"
	"github.com/CollabR18X/CollabR18X/internal/dto"
	"github.com/CollabR18X/CollabR18X/internal/entity"
	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CollaborationHandler struct {
	Service  *service.CollaborationService
	Validate *validator.Validate
}

func NewCollaborationHandler(svc *service.CollaborationService, validate *validator.Validate) *CollaborationHandler {
	return &CollaborationHandler{Service: svc, Validate: validate}
}

func (h *CollaborationHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	collabs, err := h.Service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, collabs)
}

func (h *CollaborationHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}

	var req dto.CollaborationRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid receiverId"))
	}

	collab, err := h.Service.Create(c.Request().Context(), userID, receiverID, req.Message)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, collab)
}

func (h *CollaborationHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	collabID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	var req dto.CollaborationStatusUpdate
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}

	collab, err := h.Service.UpdateStatus(c.Request().Context(), userID, collabID, entity.CollaborationStatus(req.Status))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, collab)
}

func (h *CollaborationHandler) Acknowledge(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	collabID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	collab, err := h.Service.Acknowledge(c.Request().Context(), userID, collabID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, collab)
}

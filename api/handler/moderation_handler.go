package handler

import (
	"errors"
	"net/http"

	"github.com/CollabR18X/CollabR18X/api/middleware"
	"github.com/CollabR18X/CollabR18X/internal/dto"
	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ModerationHandler struct {
	Service  *service.ModerationService
	Validate *validator.Validate
}

func NewModerationHandler(svc *service.ModerationService, validate *validator.Validate) *ModerationHandler {
	return &ModerationHandler{Service: svc, Validate: validate}
}

func (h *ModerationHandler) ListBlocks(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	blocks, err := h.Service.ListBlocks(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, blocks)
}

func (h *ModerationHandler) CreateBlock(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}

	var req dto.BlockRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	blockedID, err := uuid.Parse(req.BlockedID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid blockedId"))
	}

	block, err := h.Service.BlockUser(c.Request().Context(), userID, blockedID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, block)
}

func (h *ModerationHandler) RemoveBlock(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	blockID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.Service.Unblock(c.Request().Context(), userID, blockID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *ModerationHandler) CreateReport(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}

	var req dto.ReportRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	reportedID, err := uuid.Parse(req.ReportedID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid reportedId"))
	}

	report, err := h.Service.ReportUser(c.Request().Context(), userID, reportedID, req.Reason, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, report)
}

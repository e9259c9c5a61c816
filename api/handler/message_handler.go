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

type MessageHandler struct {
	Service  *service.MessageService
	Matching *service.MatchingService
	Validate *validator.Validate
}

func NewMessageHandler(svc *service.MessageService, matching *service.MatchingService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{Service: svc, Matching: matching, Validate: validate}
}

func (h *MessageHandler) Send(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matchID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	var req dto.MessageRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}

	message, err := h.Service.Send(c.Request().Context(), matchID, userID, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matchID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.requireParticipant(c, userID, matchID); err != nil {
		return err
	}

	messages, err := h.Service.GetMessages(c.Request().Context(), matchID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matchID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.requireParticipant(c, userID, matchID); err != nil {
		return err
	}

	if err := h.Service.MarkRead(c.Request().Context(), matchID, userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// requireParticipant is the mandatory scoping gate for match-scoped reads:
// a caller outside the match never sees its data.
func (h *MessageHandler) requireParticipant(c echo.Context, userID uuid.UUID, matchID uint) error {
	inMatch, err := h.Matching.IsUserInMatch(c.Request().Context(), userID, matchID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !inMatch {
		return writeServiceError(c, service.ErrNotParticipant)
	}
	return nil
}

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

type MatchingHandler struct {
	Service  *service.MatchingService
	Validate *validator.Validate
}

func NewMatchingHandler(svc *service.MatchingService, validate *validator.Validate) *MatchingHandler {
	return &MatchingHandler{Service: svc, Validate: validate}
}

// CreateLike records a like; when it completes a mutual pair the response
// carries both the like and the newly materialized match.
func (h *MatchingHandler) CreateLike(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}

	var req dto.LikeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	likedID, err := uuid.Parse(req.LikedID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid likedId"))
	}

	like, match, err := h.Service.CreateLike(c.Request().Context(), userID, likedID, req.IsSuperLike)
	if err != nil {
		return writeServiceError(c, err)
	}
	if match != nil {
		return c.JSON(http.StatusCreated, dto.MatchedLikeResponse{Match: match, Like: like})
	}
	return c.JSON(http.StatusCreated, like)
}

func (h *MatchingHandler) Pass(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}

	var req dto.PassRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	passedID, err := uuid.Parse(req.PassedID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid passedId"))
	}

	if err := h.Service.Pass(c.Request().Context(), userID, passedID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *MatchingHandler) LikesReceived(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	likes, err := h.Service.GetLikesReceived(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, likes)
}

func (h *MatchingHandler) ListMatches(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matches, err := h.Service.GetMatches(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}

func (h *MatchingHandler) GetMatch(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matchID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	match, err := h.Service.GetMatch(c.Request().Context(), userID, matchID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, match)
}

func (h *MatchingHandler) Unmatch(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("authentication required"))
	}
	matchID, err := parseUintParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.Service.Unmatch(c.Request().Context(), userID, matchID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

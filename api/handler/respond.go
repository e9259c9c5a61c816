package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CollabR18X/CollabR18X/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeServiceError maps classified service errors to statuses. Anything
// unclassified is a storage failure: logged by the request logger, surfaced
// as an opaque 500.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrPasswordLength),
		errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, service.ErrSelfLike),
		errors.Is(err, service.ErrSelfPass),
		errors.Is(err, service.ErrSelfBlock),
		errors.Is(err, service.ErrSelfReport),
		errors.Is(err, service.ErrSelfCollaborate),
		errors.Is(err, service.ErrBlocked),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrSamePassword),
		errors.Is(err, service.ErrNoPasswordSet),
		errors.Is(err, service.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrMatchInactive):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrMatchNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBlockNotFound),
		errors.Is(err, service.ErrCollabNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, service.ErrSessionCreateFailed):
		status = http.StatusInternalServerError
	default:
		return writeError(c, status, errors.New("internal server error"))
	}
	return writeError(c, status, err)
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint(value), nil
}

func stringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

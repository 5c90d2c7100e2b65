package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"logia-admin/internal/entities"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func writeError(c *fiber.Ctx, log *zap.SugaredLogger, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = dto.CodeUnauthorized
		msg = "invalid username or password"
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = dto.CodeUnauthorized
		msg = "authentication required"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = dto.CodeForbidden
		msg = "role not allowed"
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrMemberNotFound),
		errors.Is(err, entities.ErrDocumentNotFound),
		errors.Is(err, entities.ErrDueNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "email already registered"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "username already exists"
	case errors.Is(err, entities.ErrDueAlreadyPaid):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "cuota already paid"
	default:
		log.Errorw("request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, msg))
}

// pageFromQuery reads limit and offset. Bounds are enforced by the usecase layer.
func pageFromQuery(c *fiber.Ctx) (entities.Page, error) {
	var p entities.Page
	var err error
	if p.Limit, err = queryInt(c, "limit"); err != nil {
		return p, err
	}
	if p.Offset, err = queryInt(c, "offset"); err != nil {
		return p, err
	}
	return p, nil
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", entities.ErrInvalidArgument, key)
	}
	return v, nil
}

package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"logia-admin/internal/entities"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"invalid_argument", fmt.Errorf("%w: titulo is required", entities.ErrInvalidArgument), http.StatusBadRequest, dto.CodeInvalidArgument, "invalid argument: titulo is required"},
		{"credentials", entities.ErrInvalidCredentials, http.StatusUnauthorized, dto.CodeUnauthorized, "invalid username or password"},
		{"unauthorized", entities.ErrUnauthorized, http.StatusUnauthorized, dto.CodeUnauthorized, "authentication required"},
		{"forbidden", entities.ErrForbidden, http.StatusForbidden, dto.CodeForbidden, "role not allowed"},
		{"member_not_found", entities.ErrMemberNotFound, http.StatusNotFound, dto.CodeNotFound, "resource not found"},
		{"due_not_found", fmt.Errorf("pay: %w", entities.ErrDueNotFound), http.StatusNotFound, dto.CodeNotFound, "resource not found"},
		{"member_exists", entities.ErrMemberExists, http.StatusConflict, dto.CodeConflict, "email already registered"},
		{"already_paid", entities.ErrDueAlreadyPaid, http.StatusConflict, dto.CodeConflict, "cuota already paid"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, dto.CodeInternal, "internal error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, zap.NewNop().Sugar(), tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestPageFromQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p, err := pageFromQuery(c)
		if err != nil {
			return writeError(c, zap.NewNop().Sugar(), err)
		}
		return c.JSON(p)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?limit=10&offset=20", nil))
	require.NoError(t, err)
	var p entities.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	resp.Body.Close()
	require.Equal(t, entities.Page{Limit: 10, Offset: 20}, p)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?limit=diez", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

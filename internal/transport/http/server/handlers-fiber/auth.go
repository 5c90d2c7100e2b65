package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"
	"logia-admin/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostAuth checks credentials and returns the user profile with a session token.
func (h *Handler) PostAuth(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	session, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(dto.LoginResponse{
		User:  mapper.ToDTOUser(session.User),
		Token: session.Token,
	})
}

// GetAuthMe returns the profile behind the bearer token.
func (h *Handler) GetAuthMe(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return writeError(c, h.log, entities.ErrUnauthorized)
	}

	user, err := h.uc.CurrentUser(c.Context(), claims.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*user)})
}

// PostUser creates a dashboard account. Mounted for admins only.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.CreateUser(c.Context(), body.Username, body.Password, entities.Role(body.Role), body.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*user)})
}

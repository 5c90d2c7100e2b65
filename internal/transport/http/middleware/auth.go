package middleware

import (
	"strings"

	"logia-admin/internal/auth"
	"logia-admin/internal/entities"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Auth rejects requests without a valid bearer token and stores the
// token claims in the request locals.
func Auth(tokens TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return deny(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return deny(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "invalid authorization header format")
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "invalid or expired token")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireRoles lets the request through only when the authenticated role is listed.
// It must run after Auth.
func RequireRoles(roles ...entities.Role) fiber.Handler {
	allowed := make(map[entities.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return deny(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "authentication required")
		}
		if _, ok := allowed[claims.Role]; !ok {
			return deny(c, fiber.StatusForbidden, dto.CodeForbidden, "role not allowed")
		}
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by Auth.
func ClaimsFrom(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

func deny(c *fiber.Ctx, status int, code dto.ErrorCode, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}})
}

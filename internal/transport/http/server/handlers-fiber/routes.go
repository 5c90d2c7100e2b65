package handlers_fiber

import (
	"logia-admin/internal/entities"
	"logia-admin/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the /api endpoints on app.
// Every route except login requires a bearer token; write routes also check the role.
func RegisterRoutes(app fiber.Router, h *Handler, tokens middleware.TokenValidator) {
	authed := middleware.Auth(tokens)
	secretaria := middleware.RequireRoles(entities.RoleAdmin, entities.RoleSecretario)
	tesoreria := middleware.RequireRoles(entities.RoleAdmin, entities.RoleTesorero)
	admin := middleware.RequireRoles(entities.RoleAdmin)

	api := app.Group("/api")

	api.Post("/auth", h.PostAuth)
	api.Get("/auth/me", authed, h.GetAuthMe)
	api.Post("/usuarios", authed, admin, h.PostUser)

	api.Get("/biblioteca", authed, h.GetDocuments)
	api.Get("/biblioteca/:id", authed, h.GetDocument)
	api.Post("/biblioteca", authed, secretaria, h.PostDocument)

	api.Get("/miembros", authed, h.GetMembers)
	api.Get("/miembros/:id", authed, h.GetMember)
	api.Post("/miembros", authed, secretaria, h.PostMember)

	api.Get("/tesoreria", authed, h.GetDues)
	api.Post("/tesoreria", authed, tesoreria, h.PostPayDue)
	api.Post("/tesoreria/cuotas", authed, tesoreria, h.PostDue)
	api.Get("/tesoreria/resumen", authed, tesoreria, h.GetTreasurySummary)
	api.Get("/tesoreria/transacciones", authed, tesoreria, h.GetTransactions)
	api.Post("/tesoreria/transacciones", authed, tesoreria, h.PostTransaction)

	api.Get("/anuncios", authed, h.GetAnnouncements)
	api.Post("/anuncios", authed, secretaria, h.PostAnnouncement)

	api.Get("/rituales", authed, h.GetRituals)
	api.Post("/rituales", authed, secretaria, h.PostRitual)

	api.Get("/libros", authed, h.GetBooks)
	api.Post("/libros", authed, secretaria, h.PostBook)
}

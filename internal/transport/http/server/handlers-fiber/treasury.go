package handlers_fiber

import (
	"net/http"
	"strings"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetDues lists dues filtered by estado and miembroId.
func (h *Handler) GetDues(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	dues, err := h.uc.Dues(c.Context(), entities.DueFilter{
		Status:   entities.DueStatus(c.Query("estado")),
		MemberID: c.Query("miembroId"),
		Page:     page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Dues []dto.Due `json:"cuotas"`
	}{Dues: mapper.ToDTODues(dues)})
}

// PostPayDue marks a pending due as paid.
func (h *Handler) PostPayDue(c *fiber.Ctx) error {
	var body dto.PayDueRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	dueID := strings.TrimSpace(body.DueID)
	if dueID == "" {
		return badRequest(c, "cuotaId is required")
	}

	due, err := h.uc.PayDue(c.Context(), dueID)
	if err != nil {
		return writeError(c, h.log, err)
	}

	h.log.Infow("due paid", "cuota_id", due.ID, "miembro_id", due.MemberID)
	return c.Status(http.StatusOK).JSON(struct {
		Due dto.Due `json:"cuota"`
	}{Due: mapper.ToDTODue(*due)})
}

// PostDue issues a new pending due for a member.
func (h *Handler) PostDue(c *fiber.Ctx) error {
	var body dto.Due
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTODue(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	due, err := h.uc.CreateDue(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Due dto.Due `json:"cuota"`
	}{Due: mapper.ToDTODue(*due)})
}

// GetTreasurySummary returns ledger and dues totals.
func (h *Handler) GetTreasurySummary(c *fiber.Ctx) error {
	summary, err := h.uc.TreasurySummary(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Summary dto.TreasurySummary `json:"resumen"`
	}{Summary: mapper.ToDTOTreasurySummary(summary)})
}

// GetTransactions lists ledger entries filtered by tipo and categoria.
func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	txs, err := h.uc.Transactions(c.Context(), entities.TransactionFilter{
		Kind:     entities.TransactionKind(c.Query("tipo")),
		Category: c.Query("categoria"),
		Page:     page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Transactions []dto.Transaction `json:"transacciones"`
	}{Transactions: mapper.ToDTOTransactions(txs)})
}

// PostTransaction records a ledger entry.
func (h *Handler) PostTransaction(c *fiber.Ctx) error {
	var body dto.Transaction
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTOTransaction(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	tx, err := h.uc.CreateTransaction(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Transaction dto.Transaction `json:"transaccion"`
	}{Transaction: mapper.ToDTOTransaction(*tx)})
}

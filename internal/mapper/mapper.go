// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"
	"time"

	"logia-admin/internal/entities"
	"logia-admin/internal/transport/http/dto"
)

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// ParseDate parses an optional wire date. Empty input yields the zero time.
func ParseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", entities.ErrInvalidArgument, field)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ToDTOUser maps entities.User to its public profile.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Name:     u.Name,
	}
}

// FromDTOMember builds an entities.Member from transport DTO.
func FromDTOMember(src dto.Member) (entities.Member, error) {
	m := entities.Member{
		Name:   src.Name,
		Degree: src.Degree,
		Office: src.Office,
		Status: entities.MemberStatus(src.Status),
		Email:  src.Email,
		Phone:  src.Phone,
	}
	initiated, err := ParseDate("fechaIniciacion", src.InitiationDate)
	if err != nil {
		return m, err
	}
	if !initiated.IsZero() {
		m.InitiationDate = &initiated
	}
	return m, nil
}

// ToDTOMember maps entities.Member to transport model.
func ToDTOMember(m entities.Member) dto.Member {
	res := dto.Member{
		ID:     m.ID,
		Name:   m.Name,
		Degree: m.Degree,
		Office: m.Office,
		Status: string(m.Status),
		Email:  m.Email,
		Phone:  m.Phone,
	}
	if m.InitiationDate != nil {
		res.InitiationDate = formatDate(*m.InitiationDate)
	}
	return res
}

// ToDTOMembers maps a slice of members.
func ToDTOMembers(list []entities.Member) []dto.Member {
	res := make([]dto.Member, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOMember(m))
	}
	return res
}

// FromDTODocument builds an entities.Document from transport DTO.
func FromDTODocument(src dto.Document) (entities.Document, error) {
	date, err := ParseDate("fecha", src.Date)
	if err != nil {
		return entities.Document{}, err
	}
	return entities.Document{
		Title:       src.Title,
		Category:    src.Category,
		Degree:      src.Degree,
		Date:        date,
		Author:      src.Author,
		Description: src.Description,
	}, nil
}

// ToDTODocument maps entities.Document to transport model.
func ToDTODocument(d entities.Document) dto.Document {
	return dto.Document{
		ID:          d.ID,
		Title:       d.Title,
		Category:    d.Category,
		Degree:      d.Degree,
		Date:        formatDate(d.Date),
		Author:      d.Author,
		Description: d.Description,
	}
}

// ToDTODocuments maps a slice of documents.
func ToDTODocuments(list []entities.Document) []dto.Document {
	res := make([]dto.Document, 0, len(list))
	for _, d := range list {
		res = append(res, ToDTODocument(d))
	}
	return res
}

// FromDTODue builds an entities.Due from transport DTO. Status and payment date are server controlled.
func FromDTODue(src dto.Due) (entities.Due, error) {
	date, err := ParseDate("fecha", src.Date)
	if err != nil {
		return entities.Due{}, err
	}
	return entities.Due{
		MemberID: src.MemberID,
		Amount:   src.Amount,
		Date:     date,
	}, nil
}

// ToDTODue maps entities.Due to transport model.
func ToDTODue(d entities.Due) dto.Due {
	return dto.Due{
		ID:       d.ID,
		MemberID: d.MemberID,
		Amount:   d.Amount,
		Date:     formatDate(d.Date),
		Status:   string(d.Status),
		PaidAt:   formatOptionalDate(d.PaidAt),
	}
}

// ToDTODues maps a slice of dues.
func ToDTODues(list []entities.Due) []dto.Due {
	res := make([]dto.Due, 0, len(list))
	for _, d := range list {
		res = append(res, ToDTODue(d))
	}
	return res
}

// FromDTOTransaction builds an entities.Transaction from transport DTO.
func FromDTOTransaction(src dto.Transaction) (entities.Transaction, error) {
	date, err := ParseDate("fecha", src.Date)
	if err != nil {
		return entities.Transaction{}, err
	}
	return entities.Transaction{
		Kind:     entities.TransactionKind(src.Kind),
		Concept:  src.Concept,
		Amount:   src.Amount,
		Date:     date,
		Category: src.Category,
	}, nil
}

// ToDTOTransaction maps entities.Transaction to transport model.
func ToDTOTransaction(t entities.Transaction) dto.Transaction {
	return dto.Transaction{
		ID:       t.ID,
		Kind:     string(t.Kind),
		Concept:  t.Concept,
		Amount:   t.Amount,
		Date:     formatDate(t.Date),
		Category: t.Category,
	}
}

// ToDTOTransactions maps a slice of ledger entries.
func ToDTOTransactions(list []entities.Transaction) []dto.Transaction {
	res := make([]dto.Transaction, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTransaction(t))
	}
	return res
}

// ToDTOTreasurySummary maps treasury totals to transport model.
func ToDTOTreasurySummary(s entities.TreasurySummary) dto.TreasurySummary {
	return dto.TreasurySummary{
		Income:         s.Income,
		Expenses:       s.Expenses,
		Balance:        s.Balance,
		PendingDues:    s.PendingDues,
		PendingAmount:  s.PendingAmount,
		CollectedDues:  s.CollectedDues,
		CollectedTotal: s.CollectedTotal,
	}
}

// FromDTOAnnouncement builds an entities.Announcement from transport DTO.
func FromDTOAnnouncement(src dto.Announcement) (entities.Announcement, error) {
	date, err := ParseDate("fecha", src.Date)
	if err != nil {
		return entities.Announcement{}, err
	}
	return entities.Announcement{
		Title:    src.Title,
		Content:  src.Content,
		Date:     date,
		Author:   src.Author,
		Priority: entities.Priority(src.Priority),
	}, nil
}

// ToDTOAnnouncement maps entities.Announcement to transport model.
func ToDTOAnnouncement(a entities.Announcement) dto.Announcement {
	return dto.Announcement{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		Date:     formatDate(a.Date),
		Author:   a.Author,
		Priority: string(a.Priority),
	}
}

// ToDTOAnnouncements maps a slice of announcements.
func ToDTOAnnouncements(list []entities.Announcement) []dto.Announcement {
	res := make([]dto.Announcement, 0, len(list))
	for _, a := range list {
		res = append(res, ToDTOAnnouncement(a))
	}
	return res
}

// FromDTORitual builds an entities.Ritual from transport DTO.
func FromDTORitual(src dto.Ritual) (entities.Ritual, error) {
	date, err := ParseDate("fecha", src.Date)
	if err != nil {
		return entities.Ritual{}, err
	}
	return entities.Ritual{
		Title:       src.Title,
		Kind:        src.Kind,
		Date:        date,
		Time:        src.Time,
		Place:       src.Place,
		Degree:      src.Degree,
		Description: src.Description,
	}, nil
}

// ToDTORitual maps entities.Ritual to transport model.
func ToDTORitual(r entities.Ritual) dto.Ritual {
	return dto.Ritual{
		ID:          r.ID,
		Title:       r.Title,
		Kind:        r.Kind,
		Date:        formatDate(r.Date),
		Time:        r.Time,
		Place:       r.Place,
		Degree:      r.Degree,
		Description: r.Description,
	}
}

// ToDTORituals maps a slice of rituals.
func ToDTORituals(list []entities.Ritual) []dto.Ritual {
	res := make([]dto.Ritual, 0, len(list))
	for _, r := range list {
		res = append(res, ToDTORitual(r))
	}
	return res
}

// FromDTOBook builds an entities.Book from transport DTO. Books are available unless stated otherwise.
func FromDTOBook(src dto.Book) entities.Book {
	available := true
	if src.Available != nil {
		available = *src.Available
	}
	return entities.Book{
		Title:     src.Title,
		Author:    src.Author,
		Category:  src.Category,
		Degree:    src.Degree,
		Year:      src.Year,
		Available: available,
	}
}

// ToDTOBook maps entities.Book to transport model.
func ToDTOBook(b entities.Book) dto.Book {
	available := b.Available
	return dto.Book{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Category:  b.Category,
		Degree:    b.Degree,
		Year:      b.Year,
		Available: &available,
	}
}

// ToDTOBooks maps a slice of books.
func ToDTOBooks(list []entities.Book) []dto.Book {
	res := make([]dto.Book, 0, len(list))
	for _, b := range list {
		res = append(res, ToDTOBook(b))
	}
	return res
}

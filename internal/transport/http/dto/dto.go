// Package dto defines the JSON bodies of the HTTP API.
package dto

// ErrorCode classifies an error response.
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeInternal        ErrorCode = "INTERNAL"
)

// ErrorBody is the payload of ErrorResponse.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is returned by every failing endpoint.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the public profile; it carries no password field.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// CreateUserRequest is the body of POST /api/usuarios.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Member is the wire form of a directory entry.
type Member struct {
	ID             string `json:"id"`
	Name           string `json:"nombre"`
	Degree         string `json:"grado"`
	Office         string `json:"cargo"`
	Status         string `json:"estado"`
	Email          string `json:"email"`
	Phone          string `json:"telefono"`
	InitiationDate string `json:"fechaIniciacion,omitempty"`
}

// Document is the wire form of a library entry.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Category    string `json:"categoria"`
	Degree      string `json:"grado"`
	Date        string `json:"fecha"`
	Author      string `json:"autor"`
	Description string `json:"descripcion"`
}

// Due is the wire form of a membership due.
type Due struct {
	ID       string  `json:"id"`
	MemberID string  `json:"miembroId"`
	Amount   float64 `json:"monto"`
	Date     string  `json:"fecha"`
	Status   string  `json:"estado"`
	PaidAt   *string `json:"fechaPago"`
}

// PayDueRequest is the body of POST /api/tesoreria.
type PayDueRequest struct {
	DueID string `json:"cuotaId"`
}

// Transaction is the wire form of a ledger entry.
type Transaction struct {
	ID       string  `json:"id"`
	Kind     string  `json:"tipo"`
	Concept  string  `json:"concepto"`
	Amount   float64 `json:"monto"`
	Date     string  `json:"fecha"`
	Category string  `json:"categoria"`
}

// TreasurySummary is the wire form of the treasury totals.
type TreasurySummary struct {
	Income         float64 `json:"ingresos"`
	Expenses       float64 `json:"egresos"`
	Balance        float64 `json:"balance"`
	PendingDues    int64   `json:"cuotasPendientes"`
	PendingAmount  float64 `json:"montoPendiente"`
	CollectedDues  int64   `json:"cuotasPagadas"`
	CollectedTotal float64 `json:"montoRecaudado"`
}

// Announcement is the wire form of an announcement.
type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"titulo"`
	Content  string `json:"contenido"`
	Date     string `json:"fecha"`
	Author   string `json:"autor"`
	Priority string `json:"prioridad"`
}

// Ritual is the wire form of a scheduled ritual.
type Ritual struct {
	ID          string `json:"id"`
	Title       string `json:"titulo"`
	Kind        string `json:"tipo"`
	Date        string `json:"fecha"`
	Time        string `json:"hora"`
	Place       string `json:"lugar"`
	Degree      string `json:"grado"`
	Description string `json:"descripcion"`
}

// Book is the wire form of a catalog entry.
type Book struct {
	ID        string `json:"id"`
	Title     string `json:"titulo"`
	Author    string `json:"autor"`
	Category  string `json:"categoria"`
	Degree    string `json:"grado"`
	Year      int    `json:"anio"`
	Available *bool  `json:"disponible,omitempty"`
}

package entities

const (
	// DefaultLimit applies when a list request carries no limit.
	DefaultLimit = 50
	// MaxLimit caps any list request.
	MaxLimit = 200
)

// Page restricts a list query.
type Page struct {
	Limit  int
	Offset int
}

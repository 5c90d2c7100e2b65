package entities

// Book is an entry of the lodge's physical library catalog.
type Book struct {
	ID        string
	Title     string
	Author    string
	Category  string
	Degree    string
	Year      int
	Available bool
}

// BookFilter narrows book listings.
type BookFilter struct {
	Category string
	Degree   string
	Page     Page
}

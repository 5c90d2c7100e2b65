package entities

import "time"

// TransactionKind separates income from expenses.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "ingreso"
	TransactionExpense TransactionKind = "egreso"
)

// Transaction is a treasury ledger entry.
type Transaction struct {
	ID       string
	Kind     TransactionKind
	Concept  string
	Amount   float64
	Date     time.Time
	Category string
}

// TransactionFilter narrows ledger listings.
type TransactionFilter struct {
	Kind     TransactionKind
	Category string
	Page     Page
}

// TreasurySummary aggregates the ledger and the dues.
type TreasurySummary struct {
	Income         float64
	Expenses       float64
	Balance        float64
	PendingDues    int64
	PendingAmount  float64
	CollectedDues  int64
	CollectedTotal float64
}

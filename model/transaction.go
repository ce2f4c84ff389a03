package model

import "time"

const (
	TransactionIncome  = "receita"
	TransactionExpense = "despesa"

	TransactionPaid    = "pago"
	TransactionPending = "pendente"
)

type FinancialTransaction struct {
	DTO
	EventId     uint      `gorm:"not null;index" json:"eventId"`
	Event       Event     `gorm:"foreignKey:EventId" json:"-"`
	Type        string    `gorm:"not null" json:"type"`   // receita | despesa
	Status      string    `gorm:"not null" json:"status"` // pago | pendente
	Description string    `json:"description"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	IsAutomatic bool      `gorm:"default:false" json:"isAutomatic"` // derivada de pedido
	OrderId     *uint     `json:"orderId,omitempty"`
}
type FinancialTransactions []FinancialTransaction

type CreateTransactionInput struct {
	EventId     uint      `json:"eventId" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required,oneof=receita despesa"`
	Status      string    `json:"status" validate:"required,oneof=pago pendente"`
	Description string    `json:"description" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
}

type EditTransactionInput struct {
	Status      string   `json:"status" validate:"omitempty,oneof=pago pendente"`
	Description string   `json:"description" validate:"omitempty"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// FinancialSummary agregado puro sobre as transações de um evento
type FinancialSummary struct {
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpense   float64 `json:"totalExpense"`
	PendingIncome  float64 `json:"pendingIncome"`
	PendingExpense float64 `json:"pendingExpense"`
	Balance        float64 `json:"balance"`
}

// Summarize dobra a lista de transações num resumo financeiro. Apenas
// lançamentos pagos entram no saldo.
func Summarize(transactions []FinancialTransaction) FinancialSummary {
	var s FinancialSummary
	for _, t := range transactions {
		switch {
		case t.Type == TransactionIncome && t.Status == TransactionPaid:
			s.TotalIncome += t.Amount
		case t.Type == TransactionIncome && t.Status == TransactionPending:
			s.PendingIncome += t.Amount
		case t.Type == TransactionExpense && t.Status == TransactionPaid:
			s.TotalExpense += t.Amount
		case t.Type == TransactionExpense && t.Status == TransactionPending:
			s.PendingExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

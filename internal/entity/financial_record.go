package entity

const (
	FinancialTypeIncome  = "income"
	FinancialTypeExpense = "expense"

	FinancialStatusPaid    = "paid"
	FinancialStatusPending = "pending"
)

// FinancialRecord é um lançamento de caixa. O sinal do valor é implícito no
// tipo (income/expense); Amount é sempre não-negativo.
type FinancialRecord struct {
	ID          string  `json:"id,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Category    string  `json:"category,omitempty"`
}

package debts

// Record kinds. Debts count against the company, fixed assets count for it.
const (
	TypeDebt       = "Debt"
	TypeFixedAsset = "Fixed Asset"
)

// Record is a debt or fixed asset row
type Record struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	ProjectCode string  `json:"project_code"`
	Amount      float64 `json:"amount"`
	StartDate   string  `json:"start_date"`
	Remarks     string  `json:"remarks"`
}

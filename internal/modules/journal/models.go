package journal

// Account is one chart-of-accounts row. Code is unique.
type Account struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Entry is one journal line posted against an account
type Entry struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	AccountCode string  `json:"account_code"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Ref         string  `json:"ref"`
}

// TrialBalanceLine sums posted debits and credits for one account
type TrialBalanceLine struct {
	AccountCode string  `json:"account_code"`
	AccountName string  `json:"account_name"`
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
	Balance     float64 `json:"balance"`
}

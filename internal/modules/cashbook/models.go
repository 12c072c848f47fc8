package cashbook

// Entry is one cash book row. A valid entry carries a positive debit
// (cash in) or a positive credit (cash out), never both and never
// neither; the write path enforces this before anything hits storage.
type Entry struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	ProjectCode string  `json:"project_code"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
	RefNo       string  `json:"ref_no"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Remarks     string  `json:"remarks"`
}

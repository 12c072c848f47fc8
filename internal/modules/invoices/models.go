package invoices

// Invoice statuses accepted by the write path.
const (
	StatusDraft     = "Draft"
	StatusSubmitted = "Submitted"
	StatusPaid      = "Paid"
	StatusCancelled = "Cancelled"
)

// Invoice is one invoice row. Amount is a signed currency scalar
// (credit notes come in negative). ProjectCode may be blank for
// invoices not tied to a project.
type Invoice struct {
	ID             int     `json:"id"`
	InvoiceNo      string  `json:"invoice_no"`
	Date           string  `json:"date"`
	ProjectCode    string  `json:"project_code"`
	ClientName     string  `json:"client_name"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	Remarks        string  `json:"remarks"`
	AttachmentPath string  `json:"attachment_path,omitempty"`
}

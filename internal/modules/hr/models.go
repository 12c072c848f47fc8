package hr

// Person is one employee row. IsActive gates payroll inclusion.
type Person struct {
	ID          int     `json:"id"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	ProjectCode string  `json:"project_code"`
	BasicSalary float64 `json:"basic_salary"`
	Allowance   float64 `json:"allowance"`
	IsActive    bool    `json:"is_active"`
}

// Visa is one visa record with its cost
type Visa struct {
	ID          int     `json:"id"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	VisaNo      string  `json:"visa_no"`
	IssueDate   string  `json:"issue_date"`
	ExpiryDate  string  `json:"expiry_date"`
	Cost        float64 `json:"cost"`
	ProjectCode string  `json:"project_code"`
}

// Ticket is one travel ticket record with its cost
type Ticket struct {
	ID          int     `json:"id"`
	EmpCode     string  `json:"emp_code"`
	Name        string  `json:"name"`
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	TravelDate  string  `json:"travel_date"`
	Cost        float64 `json:"cost"`
	ProjectCode string  `json:"project_code"`
}

// PayrollSummary aggregates monthly salary cost for one project.
// Headcount counts active people only.
type PayrollSummary struct {
	ProjectCode  string  `json:"project_code"`
	Headcount    int     `json:"headcount"`
	TotalSalary  float64 `json:"total_salary"`
	TotalVisas   float64 `json:"total_visa_cost"`
	TotalTickets float64 `json:"total_ticket_cost"`
}

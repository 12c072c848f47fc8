package projects

// Project is one row of the project registry. Never mutated by the
// rollup; created and updated only through this module.
type Project struct {
	ID            int     `json:"id"`
	ProjectCode   string  `json:"project_code"`
	Name          string  `json:"name"`
	ClientName    string  `json:"client_name"`
	Location      string  `json:"location"`
	ContractValue float64 `json:"contract_value"`
	StartDate     string  `json:"start_date"`
	Status        string  `json:"status"`
	ProjectType   string  `json:"project_type"`
}

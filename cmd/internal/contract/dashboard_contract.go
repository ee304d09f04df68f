package contract

type DashboardResponse struct {
	Totals        *DashboardTotals `json:"totals"`
	SitesByStatus []*StatusCount   `json:"sites_by_status"`
	SelectedTypes []*TypeCount     `json:"selected_types"`
}

type DashboardTotals struct {
	Sites                int `json:"sites"`
	InNegotiation        int `json:"in_negotiation"`
	InLicensing          int `json:"in_licensing"`
	ReadyForConstruction int `json:"ready_for_construction"`
}

type StatusCount struct {
	Status   string `json:"status"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Count    int    `json:"count"`
}

type TypeCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

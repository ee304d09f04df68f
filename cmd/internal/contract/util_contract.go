package contract

type CompanyResponse struct {
	CNPJ         string             `json:"cnpj"`
	LegalName    string             `json:"legal_name"`
	TradeName    string             `json:"trade_name"`
	MainActivity string             `json:"main_activity"`
	RegStatus    string             `json:"registration_status"`
	RegDate      string             `json:"registration_date"`
	Partners     []*PartnerResponse `json:"qsa"`
	Cached       bool               `json:"cached"`

	// Prefill is the client form as the registry data fills it.
	Prefill *CreateClientRequest `json:"prefill"`
}

type PartnerResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

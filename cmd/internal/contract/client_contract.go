package contract

type CreateClientRequest struct {
	CNPJ             string  `json:"cnpj" validate:"required,cnpj"`
	BusinessName     string  `json:"business_name" validate:"required,max=150"`
	TradeName        string  `json:"trade_name" validate:"required,max=150"`
	Activity         string  `json:"activity" validate:"required,max=150"`
	ZipCode          string  `json:"zip_code" validate:"required,max=9"`
	Street           string  `json:"street" validate:"required,max=150"`
	Number           string  `json:"number" validate:"required,max=10"`
	City             string  `json:"city" validate:"required,max=80"`
	State            string  `json:"state" validate:"required,uf"`
	RegistrationDate *string `json:"registration_date" validate:"omitempty,isodate"`
	Status           *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type ClientResponse struct {
	ID               string `json:"id"`
	CNPJ             string `json:"cnpj"`
	BusinessName     string `json:"business_name"`
	TradeName        string `json:"trade_name"`
	ZipCode          string `json:"zip_code"`
	Street           string `json:"street"`
	Number           string `json:"number"`
	City             string `json:"city"`
	State            string `json:"state"`
	RegistrationDate string `json:"registration_date"`
	Activity         string `json:"activity"`
	Status           string `json:"status"`
}

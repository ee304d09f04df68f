package entity

type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// Client is the operator/owner company a collaborator may work for.
type Client struct {
	ID               string       `yaml:"id"`
	CNPJ             string       `yaml:"cnpj"`
	BusinessName     string       `yaml:"business_name"`
	TradeName        string       `yaml:"trade_name"`
	ZipCode          string       `yaml:"zip_code"`
	Street           string       `yaml:"street"`
	Number           string       `yaml:"number"`
	City             string       `yaml:"city"`
	State            string       `yaml:"state"`
	RegistrationDate string       `yaml:"registration_date"`
	Activity         string       `yaml:"activity"`
	Status           ClientStatus `yaml:"status"`
}

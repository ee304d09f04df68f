package minhareceita

import (
	"strings"

	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/utils"
)

type companyResponse struct {
	CNPJ               string `json:"cnpj"`
	LegalName          string `json:"razao_social"`
	TradeName          string `json:"nome_fantasia"`
	MainActivity       string `json:"cnae_fiscal_descricao"`
	BusinessStartDate  string `json:"data_inicio_atividade"`
	RegistrationStatus string `json:"descricao_situacao_cadastral"`
	RegistrationDate   string `json:"data_situacao_cadastral"`

	AddressType         string `json:"descricao_tipo_de_logradouro"`
	AddressStreetName   string `json:"logradouro"`
	AddressNumber       string `json:"numero"`
	AddressNeighborhood string `json:"bairro"`
	AddressZipCode      string `json:"cep"`
	AddressCity         string `json:"municipio"`
	AddressState        string `json:"uf"`

	Partners []*partnerResponse `json:"qsa"`
}

type partnerResponse struct {
	Name string `json:"nome_socio"`
	Role string `json:"qualificacao_socio"`
}

func (c *companyResponse) ToDomain() *entity.Company {
	seen := make(map[string]bool, len(c.Partners))
	var partners []*entity.CompanyPartner
	for _, p := range c.Partners {
		// Partner names are unique per company in the cache.
		if p == nil || seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		partners = append(partners, &entity.CompanyPartner{
			Name: p.Name,
			Role: p.Role,
		})
	}

	return &entity.Company{
		CNPJ:                utils.DigitsOnly(c.CNPJ),
		LegalName:           c.LegalName,
		TradeName:           c.TradeName,
		MainActivity:        c.MainActivity,
		BusinessStartDate:   c.BusinessStartDate,
		RegStatus:           translateStatus(c.RegistrationStatus),
		RegDate:             c.RegistrationDate,
		AddressType:         c.AddressType,
		AddressStreetName:   c.AddressStreetName,
		AddressNumber:       c.AddressNumber,
		AddressNeighborhood: c.AddressNeighborhood,
		AddressZipCode:      c.AddressZipCode,
		AddressCity:         c.AddressCity,
		AddressState:        strings.ToUpper(c.AddressState),
		Partners:            partners,
	}
}

func translateStatus(status string) entity.RegStatus {
	switch strings.ToUpper(status) {
	case "ATIVA":
		return entity.RegStatusActive
	case "BAIXADA":
		return entity.RegStatusClosed
	case "SUSPENSA":
		return entity.RegStatusSuspended
	case "INAPTA":
		return entity.RegStatusUnfit
	default:
		return entity.RegStatusUnknown
	}
}

package entity

type RegStatus string

const (
	RegStatusActive    RegStatus = "ACTIVE"
	RegStatusClosed    RegStatus = "CLOSED"
	RegStatusSuspended RegStatus = "SUSPENDED"
	RegStatusUnfit     RegStatus = "UNFIT"
	RegStatusUnknown   RegStatus = "UNKNOWN"
)

// Company is the cached public registry record behind a CNPJ.
// It only exists to prefill client registrations.
type Company struct {
	CNPJ                string `gorm:"primaryKey;column:cnpj"`
	LegalName           string
	TradeName           string
	MainActivity        string
	BusinessStartDate   string
	RegStatus           RegStatus
	RegDate             string
	AddressType         string
	AddressStreetName   string
	AddressNumber       string
	AddressNeighborhood string
	AddressZipCode      string
	AddressCity         string
	AddressState        string

	// Found controls negative caching:
	//
	// - true: the CNPJ exists and the registry data is cached.
	//
	// - false: the registry answered 404 and the CNPJ is cached as unknown.
	Found    bool  `gorm:"not null"`
	CachedAt int64 `gorm:"not null;index;autoUpdateTime:false"`

	// Relationships
	Partners []*CompanyPartner `gorm:"foreignKey:CompanyCNPJ;references:CNPJ;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type CompanyPartner struct {
	ID          int    `gorm:"primaryKey"`
	CompanyCNPJ string `gorm:"uniqueIndex:idx_company_partner_cnpj_name;index"`
	Name        string `gorm:"uniqueIndex:idx_company_partner_cnpj_name"`
	Role        string
}

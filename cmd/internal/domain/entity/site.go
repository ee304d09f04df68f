package entity

import "strings"

type SiteStatus string

const (
	SiteStatusSearch               SiteStatus = "SEARCH"
	SiteStatusNegotiation          SiteStatus = "NEGOTIATION"
	SiteStatusLegalReview          SiteStatus = "LEGAL_REVIEW"
	SiteStatusLicensing            SiteStatus = "LICENSING"
	SiteStatusReadyForConstruction SiteStatus = "READY_FOR_CONSTRUCTION"
	SiteStatusCancelled            SiteStatus = "CANCELLED"
)

// SiteStatuses lists every status in lifecycle order.
var SiteStatuses = []SiteStatus{
	SiteStatusSearch,
	SiteStatusNegotiation,
	SiteStatusLegalReview,
	SiteStatusLicensing,
	SiteStatusReadyForConstruction,
	SiteStatusCancelled,
}

var siteStatusLabels = map[SiteStatus]string{
	SiteStatusSearch:               "Em Busca",
	SiteStatusNegotiation:          "Negociação",
	SiteStatusLegalReview:          "Análise Jurídica",
	SiteStatusLicensing:            "Licenciamento",
	SiteStatusReadyForConstruction: "Pronto para Obra",
	SiteStatusCancelled:            "Cancelado",
}

// Label is the display name used on dashboards and reports.
// Unknown statuses are displayed as-is.
func (s SiteStatus) Label() string {
	if label, ok := siteStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ShortLabel is the first word of the label, used for chart axes.
func (s SiteStatus) ShortLabel() string {
	return firstWord(s.Label())
}

func (s SiteStatus) IsValid() bool {
	_, ok := siteStatusLabels[s]
	return ok
}

// Site is a sharing arrangement tracked from search to ready-for-construction.
// SharingID is both its identity and the key candidates join on.
type Site struct {
	SharingID             string     `yaml:"sharing_id"`
	OperatorID            string     `yaml:"operator_id"`
	SharingName           string     `yaml:"sharing_name"`
	OperatorName          string     `yaml:"operator_name"`
	ProjectID             string     `yaml:"project_id"`
	City                  string     `yaml:"city"`
	State                 string     `yaml:"state"`
	Regional              string     `yaml:"regional"`
	NominalLatitude       float64    `yaml:"nominal_latitude"`
	NominalLongitude      float64    `yaml:"nominal_longitude"`
	RequestedHeight       float64    `yaml:"requested_height"`
	TargetDate            string     `yaml:"target_date"`
	ActivationDate        string     `yaml:"activation_date"`
	ActivationOrder       int        `yaml:"activation_order"`
	SearchRadius          float64    `yaml:"search_radius"` // meters
	Size                  string     `yaml:"size"`
	ProjectAssumptions    string     `yaml:"project_assumptions"`
	ClientCoordinatorID   string     `yaml:"client_coordinator_id"`
	SupplierCoordinatorID string     `yaml:"supplier_coordinator_id"`
	ClientSLA             string     `yaml:"client_sla"`
	Status                SiteStatus `yaml:"status"`

	// Progress (0-100) is set by the caller and is not derived from Status.
	Progress int `yaml:"progress"`
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

package entity

type SiteType string

const (
	SiteTypeGreenfield  SiteType = "GREENFIELD"
	SiteTypeRooftop     SiteType = "ROOFTOP"
	SiteTypeStreetLevel SiteType = "STREET_LEVEL"
	SiteTypeIndoor      SiteType = "INDOOR"
)

var SiteTypes = []SiteType{
	SiteTypeGreenfield,
	SiteTypeRooftop,
	SiteTypeStreetLevel,
	SiteTypeIndoor,
}

var siteTypeLabels = map[SiteType]string{
	SiteTypeGreenfield:  "Greenfield",
	SiteTypeRooftop:     "Rooftop",
	SiteTypeStreetLevel: "Street Level (Biosite)",
	SiteTypeIndoor:      "Indoor",
}

func (t SiteType) Label() string {
	if label, ok := siteTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t SiteType) ShortLabel() string {
	return firstWord(t.Label())
}

type CandidateStatus string

const (
	CandidateSelected    CandidateStatus = "SELECTED"
	CandidateBackup      CandidateStatus = "BACKUP"
	CandidateRejected    CandidateStatus = "REJECTED"
	CandidateUnderReview CandidateStatus = "UNDER_REVIEW"
)

var candidateStatusLabels = map[CandidateStatus]string{
	CandidateSelected:    "Selecionado",
	CandidateBackup:      "Backup",
	CandidateRejected:    "Rejeitado",
	CandidateUnderReview: "Em Análise",
}

func (s CandidateStatus) Label() string {
	if label, ok := candidateStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Candidate is a property proposed to host a Site.
//
// SharingID, OperatorID, SharingName, OperatorName, ProjectID and SiteStatus
// are copied from the parent site when the candidate is created. They are a
// snapshot: later edits to the site are NOT reflected here.
type Candidate struct {
	ID           string     `yaml:"id"`
	SiteID       string     `yaml:"site_id"` // References: sites(sharing_id)
	SharingID    string     `yaml:"sharing_id"`
	OperatorID   string     `yaml:"operator_id"`
	SharingName  string     `yaml:"sharing_name"`
	OperatorName string     `yaml:"operator_name"`
	ProjectID    string     `yaml:"project_id"`
	SiteStatus   SiteStatus `yaml:"site_status"`

	Name       string          `yaml:"name"`
	SiteType   SiteType        `yaml:"site_type"`
	IsSelected bool            `yaml:"is_selected"`
	Status     CandidateStatus `yaml:"status"`

	Locality  string  `yaml:"locality"`
	State     string  `yaml:"state"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`

	ZipCode      string `yaml:"zip_code"`
	Street       string `yaml:"street"`
	Number       string `yaml:"number"`
	Neighborhood string `yaml:"neighborhood"`
	Complement   string `yaml:"complement"`

	ActivationDate string `yaml:"activation_date"`
	SearchOrder    int    `yaml:"search_order"`

	ClientCoordinatorID   string `yaml:"client_coordinator_id"`
	SupplierCoordinatorID string `yaml:"supplier_coordinator_id"`

	LandlordName string  `yaml:"landlord_name"`
	LeaseAmount  float64 `yaml:"lease_amount"`
}

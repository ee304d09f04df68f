package contract

type CreateSiteRequest struct {
	SharingID             string   `json:"sharing_id" validate:"required,max=40"`
	OperatorID            string   `json:"operator_id" validate:"required,max=40"`
	SharingName           string   `json:"sharing_name" validate:"required,max=120"`
	OperatorName          string   `json:"operator_name" validate:"required,max=120"`
	ProjectID             string   `json:"project_id" validate:"required,max=40"`
	City                  string   `json:"city" validate:"required,max=80"`
	State                 string   `json:"state" validate:"required,uf"`
	Regional              string   `json:"regional" validate:"required,max=80"`
	NominalLatitude       *float64 `json:"nominal_latitude" validate:"required,latitude"`
	NominalLongitude      *float64 `json:"nominal_longitude" validate:"required,longitude"`
	RequestedHeight       *float64 `json:"requested_height" validate:"required,gte=0"`
	TargetDate            string   `json:"target_date" validate:"required,isodate"`
	ActivationDate        string   `json:"activation_date" validate:"required,isodate"`
	ActivationOrder       int      `json:"activation_order" validate:"gte=0"`
	SearchRadius          float64  `json:"search_radius" validate:"gte=0"`
	Size                  string   `json:"size" validate:"max=40"`
	ProjectAssumptions    string   `json:"project_assumptions" validate:"max=5000"`
	ClientCoordinatorID   string   `json:"client_coordinator_id" validate:"max=40"`
	SupplierCoordinatorID string   `json:"supplier_coordinator_id" validate:"max=40"`
	ClientSLA             string   `json:"client_sla" validate:"max=40"`
	Status                *string  `json:"status" validate:"omitempty,max=40"`
	Progress              *int     `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type SiteResponse struct {
	SharingID             string  `json:"sharing_id"`
	OperatorID            string  `json:"operator_id"`
	SharingName           string  `json:"sharing_name"`
	OperatorName          string  `json:"operator_name"`
	ProjectID             string  `json:"project_id"`
	City                  string  `json:"city"`
	State                 string  `json:"state"`
	Regional              string  `json:"regional"`
	NominalLatitude       float64 `json:"nominal_latitude"`
	NominalLongitude      float64 `json:"nominal_longitude"`
	RequestedHeight       float64 `json:"requested_height"`
	TargetDate            string  `json:"target_date"`
	ActivationDate        string  `json:"activation_date"`
	ActivationOrder       int     `json:"activation_order"`
	SearchRadius          float64 `json:"search_radius"`
	Size                  string  `json:"size"`
	ProjectAssumptions    string  `json:"project_assumptions"`
	ClientCoordinatorID   string  `json:"client_coordinator_id"`
	SupplierCoordinatorID string  `json:"supplier_coordinator_id"`
	ClientSLA             string  `json:"client_sla"`
	Status                string  `json:"status"`
	StatusLabel           string  `json:"status_label"`
	Progress              int     `json:"progress"`
}

// SiteDetailsResponse is a site with its joins resolved. Broken references
// are never an error: ProjectName falls back to the raw project id and
// Project is omitted.
type SiteDetailsResponse struct {
	Site                *SiteResponse           `json:"site"`
	Project             *ProjectResponse        `json:"project,omitempty"`
	ProjectName         string                  `json:"project_name"`
	ClientCoordinator   *CoordinatorRef         `json:"client_coordinator,omitempty"`
	SupplierCoordinator *CoordinatorRef         `json:"supplier_coordinator,omitempty"`
	Coordinators        []*CollaboratorResponse `json:"coordinators"`
	Candidates          []*CandidateResponse    `json:"candidates"`
	CandidateCount      int                     `json:"candidate_count"`
}

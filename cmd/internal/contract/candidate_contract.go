package contract

type CreateCandidateRequest struct {
	SiteID     string  `json:"site_id" validate:"required,max=40"`
	Name       string  `json:"name" validate:"required,max=120"`
	SiteType   string  `json:"site_type" validate:"required,oneof=GREENFIELD ROOFTOP STREET_LEVEL INDOOR"`
	IsSelected *bool   `json:"is_selected"`
	Status     *string `json:"status" validate:"omitempty,oneof=SELECTED BACKUP REJECTED UNDER_REVIEW"`

	Locality  string   `json:"locality" validate:"max=80"`
	State     string   `json:"state" validate:"omitempty,uf"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`

	ZipCode      string `json:"zip_code" validate:"max=9"`
	Street       string `json:"street" validate:"max=150"`
	Number       string `json:"number" validate:"max=10"`
	Neighborhood string `json:"neighborhood" validate:"max=80"`
	Complement   string `json:"complement" validate:"max=80"`

	ActivationDate string `json:"activation_date" validate:"omitempty,isodate"`
	SearchOrder    int    `json:"search_order" validate:"gte=0"`

	ClientCoordinatorID   string `json:"client_coordinator_id" validate:"max=40"`
	SupplierCoordinatorID string `json:"supplier_coordinator_id" validate:"max=40"`

	LandlordName string  `json:"landlord_name" validate:"max=120"`
	LeaseAmount  float64 `json:"lease_amount" validate:"gte=0"`
}

type CandidateResponse struct {
	ID              string  `json:"id"`
	SiteID          string  `json:"site_id"`
	SharingID       string  `json:"sharing_id"`
	OperatorID      string  `json:"operator_id"`
	SharingName     string  `json:"sharing_name"`
	OperatorName    string  `json:"operator_name"`
	ProjectID       string  `json:"project_id"`
	SiteStatus      string  `json:"site_status"`
	Name            string  `json:"name"`
	SiteType        string  `json:"site_type"`
	SiteTypeLabel   string  `json:"site_type_label"`
	IsSelected      bool    `json:"is_selected"`
	Status          string  `json:"status"`
	StatusLabel     string  `json:"status_label"`
	Locality        string  `json:"locality"`
	State           string  `json:"state"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ZipCode         string  `json:"zip_code"`
	Street          string  `json:"street"`
	Number          string  `json:"number"`
	Neighborhood    string  `json:"neighborhood"`
	Complement      string  `json:"complement"`
	ActivationDate  string  `json:"activation_date"`
	SearchOrder     int     `json:"search_order"`
	ClientCoordID   string  `json:"client_coordinator_id"`
	SupplierCoordID string  `json:"supplier_coordinator_id"`
	LandlordName    string  `json:"landlord_name"`
	LeaseAmount     float64 `json:"lease_amount"`
}

package contract

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Assumptions string `json:"assumptions" validate:"required,max=5000"`
	Notes       string `json:"notes" validate:"max=5000"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Assumptions string `json:"assumptions"`
	Notes       string `json:"notes"`
}

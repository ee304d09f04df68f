package contract

type CreateCollaboratorRequest struct {
	Name string  `json:"name" validate:"required,max=120"`
	Type *string `json:"type" validate:"omitempty,oneof=CLIENT_SIDE SUPPLIER_SIDE"`

	// ClientID is not checked against the type: supplier-side collaborators
	// may carry one as well.
	ClientID string `json:"client_id" validate:"max=40"`
	Role     string `json:"role" validate:"required,max=80"`
	Mobile   string `json:"mobile" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email"`
}

type CollaboratorResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ClientID string `json:"client_id,omitempty"`
	Type     string `json:"type"`
	Role     string `json:"role"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
}

// CoordinatorRef is a coordinator id resolved for display. When the id does
// not match any collaborator, Name falls back to the raw id.
type CoordinatorRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
	Resolved bool   `json:"resolved"`
}

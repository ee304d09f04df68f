package entity

type CollaboratorType string

const (
	CollaboratorClientSide   CollaboratorType = "CLIENT_SIDE"
	CollaboratorSupplierSide CollaboratorType = "SUPPLIER_SIDE"
)

type Collaborator struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	// ClientID is empty when the collaborator has no employer client.
	// It is only expected for CollaboratorClientSide, but nothing enforces that.
	ClientID string           `yaml:"client_id"`
	Type     CollaboratorType `yaml:"type"`
	Role     string           `yaml:"role"`
	Mobile   string           `yaml:"mobile"`
	Email    string           `yaml:"email"`
}

func (c *Collaborator) HasClient() bool {
	return c.ClientID != ""
}

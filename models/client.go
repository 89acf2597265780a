package models

// Client is an entry in the client directory. Identity is the opaque ID
// assigned at creation; a client is never deleted while a budget still
// references it (enforced at the handler layer, not here).
type Client struct {
	ID              string `json:"id"`
	CompanyName     string `json:"companyName" binding:"required"`
	ContactPerson   string `json:"contactPerson"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	TelephoneNumber string `json:"telephoneNumber,omitempty"`
	Address         string `json:"address"`
	ProjectLocation string `json:"projectLocation,omitempty"`
}

// InlineClient is the "new client" payload a budget carries before commit.
// It is consumed at commit time: the store registers a Client from it and
// rewrites the budget to reference the generated ID.
type InlineClient struct {
	CompanyName     string `json:"companyName"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	PhoneNumber     string `json:"phoneNumber"`
	Address         string `json:"address"`
	ProjectLocation string `json:"projectLocation"`
}

// ToClient materializes the inline data as a directory entry.
func (ic InlineClient) ToClient(id string) Client {
	return Client{
		ID:              id,
		CompanyName:     ic.CompanyName,
		ContactPerson:   ic.ClientName,
		Email:           ic.ClientEmail,
		Phone:           ic.PhoneNumber,
		Address:         ic.Address,
		ProjectLocation: ic.ProjectLocation,
	}
}

// ClientRefKind discriminates how a budget refers to its client.
type ClientRefKind int

const (
	// ClientRefNone means the budget carries no usable client data.
	ClientRefNone ClientRefKind = iota
	// ClientRefExisting references a client in the directory by ID.
	ClientRefExisting
	// ClientRefInline carries new-client data not yet registered.
	ClientRefInline
)

// ClientRef is the tagged variant behind the clientId/newClient union.
// After commit a budget always resolves to Existing (or None).
type ClientRef struct {
	Kind   ClientRefKind
	ID     string
	Inline *InlineClient
}

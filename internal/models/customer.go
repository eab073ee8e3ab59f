package models

// Address is the postal address typed in at registration.
type Address struct {
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string // state code, e.g. "SP"
}

// Customer is a registered account holder. ID is the tax identifier and is
// unique across the registry.
type Customer struct {
	ID        string
	Name      string
	BirthDate string
	Address   Address
}

package domain

import "time"

// Contact is an address-book entry. Exactly one owner; every query against
// the store is filtered by OwnerID so records of other accounts are
// structurally unreachable.
type Contact struct {
	ID        string
	OwnerID   string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "FirstName LastName".
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

package models

import "strings"

// Customer is the identity captured at finalization time. It is not a
// managed entity: the fields are copied onto the invoice and nothing else
// references them afterwards.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// FullName joins first and last name with a single space.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

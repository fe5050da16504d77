package entity

import (
	"strings"
	"time"
)

// DefaultOperatorMailbox receives registrations when no target is configured.
const DefaultOperatorMailbox = "registrations@entityreg.local"

// Registration is a verified entity registration on its way to the operator.
type Registration struct {
	EntityName         string
	Website            string
	SEBIRegistrationNo string
	Address            string
	City               string
	State              string
	Country            string
	ContactPerson      string
	Designation        string
	EmailID            string
	Mobile             string
	SubmittedAt        time.Time
}

// AddressLine joins the postal parts the way the operator reads them.
func (r Registration) AddressLine() string {
	return strings.Join([]string{r.Address, r.City, r.State, r.Country}, ", ")
}

// Subject is the operator mail subject line.
func (r Registration) Subject() string {
	return "New Entity Registration: " + r.EntityName
}

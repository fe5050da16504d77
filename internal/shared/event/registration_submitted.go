package event

import "time"

// RegistrationSubmittedDestination is the topic/subject for accepted registrations.
const RegistrationSubmittedDestination string = "registration_submitted"

// RegistrationSubmittedMessage is published after the operator mail was accepted.
type RegistrationSubmittedMessage struct {
	EventID            string    `json:"event_id"`
	EntityName         string    `json:"entity_name"`
	Website            string    `json:"website"`
	SEBIRegistrationNo string    `json:"sebi_registration_no"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Country            string    `json:"country"`
	ContactPerson      string    `json:"contact_person"`
	Designation        string    `json:"designation"`
	EmailID            string    `json:"email_id"`
	Mobile             string    `json:"mobile"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

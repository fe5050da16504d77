package inbound

type SendOTPRequest struct {
	Email string `json:"email"`
}

type SendOTPResponse struct{}

func (SendOTPResponse) Message() string {
	return "OTP sent successfully!"
}

func (SendOTPResponse) Data() any { return nil }

type SubmitRequest struct {
	EntityName         string `json:"entity_name"`
	Website            string `json:"website"`
	SEBIRegistrationNo string `json:"sebi_registration_no"`
	Address            string `json:"address"`
	City               string `json:"city"`
	State              string `json:"state"`
	Country            string `json:"country"`
	ContactPerson      string `json:"contact_person"`
	Designation        string `json:"designation"`
	EmailID            string `json:"email_id"`
	Mobile             string `json:"mobile"`
	OTP                string `json:"otp"`
}

type SubmitResponse struct{}

func (SubmitResponse) Message() string {
	return "Form submitted and email sent successfully!"
}

func (SubmitResponse) Data() any { return nil }

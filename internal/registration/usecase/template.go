package usecase

const (
	tplOTP          = "otp"
	tplRegistration = "registration"
)

const mailTemplates = `
{{define "otp"}}<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #0056b3;">OTP for Email Verification</h2>
  <p>Dear User,</p>
  <p>Your One-Time Password (OTP) for verifying your email address for Entity Registration is:</p>
  <p style="font-size: 24px; font-weight: bold; color: #007bff; background-color: #f0f0f0; padding: 10px; border-radius: 5px; display: inline-block;">{{.Code}}</p>
  <p>This OTP is valid for {{.ValidMinutes}} minutes. Please do not share this with anyone.</p>
  <p>If you did not request this, please ignore this email.</p>
  <p>Thank you,</p>
  <p>The Registration Team</p>
</div>{{end}}

{{define "registration"}}<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #0056b3;">New Entity Registration Submission</h2>
  <p>A new entity registration form has been submitted with the following details:</p>
  <ul style="list-style-type: none; padding: 0;">
    <li style="margin-bottom: 8px;"><strong>Entity Name:</strong> {{.EntityName}}</li>
    <li style="margin-bottom: 8px;"><strong>Website:</strong> <a href="{{.WebsiteURL}}" target="_blank">{{.Website}}</a></li>
    <li style="margin-bottom: 8px;"><strong>SEBI Registration No:</strong> {{.SEBIRegistrationNo}}</li>
    <li style="margin-bottom: 8px;"><strong>Address:</strong> {{.Address}}</li>
    <li style="margin-bottom: 8px;"><strong>Contact Person:</strong> {{.ContactPerson}}</li>
    <li style="margin-bottom: 8px;"><strong>Designation:</strong> {{.Designation}}</li>
    <li style="margin-bottom: 8px;"><strong>Email ID:</strong> {{.EmailID}}</li>
    <li style="margin-bottom: 8px;"><strong>Mobile:</strong> {{.Mobile}}</li>
  </ul>
  <p>This submission was made at: {{.SubmittedAt}}</p>
</div>{{end}}
`

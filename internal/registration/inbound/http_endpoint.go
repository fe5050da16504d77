package inbound

import (
	"github.com/shandysiswandi/entityreg/internal/pkg/router"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
)

// HTTPEndpoint exposes HTTP handlers for the registration form.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP mails a one-time password to the given address.
// @Summary Send registration OTP
// @Description Derives the OTP for the current window and mails it to the address.
// @Description Keys are snake_case. Unknown keys, including the camelCase ones of the old form API, get 400.
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "OTP request payload"
// @Success 200 {object} router.successResponse "OTP sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 500 {object} router.errorResponse "Server configuration error"
// @Failure 503 {object} router.errorResponse "Mail transport failure"
// @Router /api/v1/registration/otp [post]
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return SendOTPResponse{}, nil
}

// Submit verifies the OTP and forwards the registration to the operator.
// @Summary Submit registration
// @Description Verifies the OTP for email_id and mails the registration details to the operator mailbox.
// @Description Keys are snake_case. Unknown keys, including the camelCase ones of the old form API, get 400.
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Registration payload"
// @Success 200 {object} router.successResponse "Registration forwarded"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 400 {object} router.errorResponse "Validation error" example:{"message":"Validation error","error":{"city":"city is a required field"}}
// @Failure 401 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 500 {object} router.errorResponse "Server configuration error"
// @Failure 503 {object} router.errorResponse "Mail transport failure"
// @Router /api/v1/registration/submit [post]
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req SubmitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		EntityName:         req.EntityName,
		Website:            req.Website,
		SEBIRegistrationNo: req.SEBIRegistrationNo,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		ContactPerson:      req.ContactPerson,
		Designation:        req.Designation,
		EmailID:            req.EmailID,
		Mobile:             req.Mobile,
		OTP:                req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return SubmitResponse{}, nil
}

package inbound

import (
	"context"

	"github.com/shandysiswandi/entityreg/internal/pkg/router"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) error
	Submit(ctx context.Context, in usecase.SubmitInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/registration/otp", end.SendOTP)
	r.POST("/api/v1/registration/submit", end.Submit)
}

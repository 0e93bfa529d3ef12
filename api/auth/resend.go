package auth

import (
	"net/http"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleResendOTP always responds with the same message so it cannot be used
// to probe which emails have accounts.
func (arm *AuthRoutesManager) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ResendOTPRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract resend body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please provide a valid email address"), gecho.Send())
		return
	}

	if err := arm.authService.ResendOTP(body.Email); err != nil {
		arm.logger.Error("Failed to resend verification code", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to resend the code. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("If an unverified account exists for this email, a new code has been sent"),
		gecho.Send(),
	)
}

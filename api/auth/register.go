package auth

import (
	"errors"
	"net/http"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract register body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your registration information and try again"), gecho.Send())
		return
	}

	user, err := arm.authService.Register(body)
	if err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w, gecho.WithMessage("An account with this email or username already exists"), gecho.Send())
			return
		}
		arm.logger.Error("Registration failed", gecho.Field("error", err), gecho.Field("email", body.Email))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create account. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created. Check your email for a verification code"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

package auth

import (
	"errors"
	"net/http"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleVerifyOTP checks the emailed code and, on success, logs the user
// straight in so they do not have to re-enter their credentials.
func (arm *AuthRoutesManager) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.VerifyOTPRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract verify body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the verification code and try again"), gecho.Send())
		return
	}

	user, err := arm.authService.VerifyOTP(body.UserID, body.Code)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidOTP), errors.Is(err, lib.ErrExpiredToken):
			gecho.BadRequest(w, gecho.WithMessage(lib.GetUserMessage(err)), gecho.Send())
		case errors.Is(err, lib.ErrNotFound):
			gecho.NotFound(w, gecho.WithMessage("No pending verification found for this account"), gecho.Send())
		default:
			arm.logger.Error("OTP verification failed", gecho.Field("error", err), gecho.Field("userID", body.UserID))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to verify your email. Please try again"), gecho.Send())
		}
		return
	}

	accessToken, err := arm.authService.GenerateAccessToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Email verified. Please log in"), gecho.Send())
		return
	}

	refreshToken, err := arm.authService.GenerateRefreshToken(user)
	if err != nil {
		arm.logger.Warn("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Email verified. Please log in"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, refreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, accessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Email verified"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

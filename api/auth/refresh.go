package auth

import (
	"net/http"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh rotates the refresh token: the old one is blacklisted and a
// fresh pair of cookies is issued.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil || refreshToken == "" {
		// Non-browser clients send the token in the body instead
		body, bodyErr := lib.ExtractAndValidateBody[structs.RefreshTokenRequest](r)
		if bodyErr != nil {
			gecho.Unauthorized(w, gecho.WithMessage("No refresh token provided"), gecho.Send())
			return
		}
		refreshToken = body.RefreshToken
	}

	authResponse, err := arm.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		arm.logger.Warn("Token refresh failed", gecho.Field("error", err))
		lib.ClearCookie(lib.AccessCookieName, w)
		lib.ClearCookie(lib.RefreshCookieName, w)
		gecho.Unauthorized(w, gecho.WithMessage("Session expired. Please log in again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.RefreshCookieName, authResponse.RefreshToken, arm.authService.GetRefreshTokenExpiration(), w)
	lib.SetCookie(lib.AccessCookieName, authResponse.AccessToken, arm.authService.GetAccessTokenExpiration(), w)

	gecho.Success(w,
		gecho.WithMessage("Session refreshed"),
		gecho.WithData(authResponse.User),
		gecho.Send(),
	)
}

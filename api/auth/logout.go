package auth

import (
	"net/http"
	"vendora_server/api/middleware"
	"vendora_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	// Logout succeeds even without valid claims; the cookies get cleared
	// regardless so a client with an expired token is not stuck.
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok && claims != nil {
		if err := arm.authService.Logout(claims); err != nil {
			arm.logger.Warn("Failed to blacklist token on logout", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		}
	} else if claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret()); err == nil {
		if err := arm.authService.Logout(claims); err != nil {
			arm.logger.Warn("Failed to blacklist token on logout", gecho.Field("error", err), gecho.Field("userID", claims.Sub))
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)
	lib.ClearCookie(lib.RefreshCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out"),
		gecho.Send(),
	)
}

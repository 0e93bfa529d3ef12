package middleware

import (
	"context"
	"net/http"
	"time"
	"vendora_server/lib"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
)

// SessionMiddleware mints an anonymous session token for first-time
// visitors and builds the request Identity from the session cookie plus
// any claims attached by the auth middleware. Must run after
// OptionalAuthMiddleware on public routes.
func (mw *Middleware) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionToken, err := lib.GetCookieValue(lib.SessionCookieName, r)
		if err != nil || sessionToken == "" {
			sessionToken, err = lib.GenerateRandomToken()
			if err != nil {
				mw.logger.Error("Failed to mint session token", gecho.Field("error", err))
				// Proceed without a session; view/like tracking degrades
				// to authenticated-only for this request
				sessionToken = ""
			} else {
				lib.SetCookie(lib.SessionCookieName, sessionToken, time.Now().Add(mw.cfg.Cache.SessionTTL), w)
			}
		}

		if sessionToken != "" {
			go func(token string) {
				if err := mw.cacheService.TouchSession(token); err != nil {
					mw.logger.Debug("Failed to touch session", gecho.Field("error", err))
				}
			}(sessionToken)
		}

		identity := structs.AnonymousIdentity(sessionToken)
		if claims, ok := GetClaimsFromContext(r.Context()); ok {
			identity = structs.UserIdentity(claims.Sub, sessionToken)
		}

		ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext extracts the request identity
func GetIdentityFromContext(ctx context.Context) (structs.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(structs.Identity)
	return identity, ok
}

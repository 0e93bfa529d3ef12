package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"vendora_server/lib"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// candidateSlug derives a store slug from the request host, or "" when the
// host addresses the main site. The first label of a subdomain is the slug:
// acme.vendora.shop resolves to "acme". Bare and www hosts are the main
// site. Hosts with fewer than three labels carry no slug, except in dev
// mode where two-label hosts like acme.localhost are accepted.
func candidateSlug(host, rootDomain string, devMode bool) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if host == "" || host == rootDomain || host == "www."+rootDomain {
		return ""
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 && !(devMode && len(labels) == 2) {
		return ""
	}

	slug := labels[0]
	if slug == "www" || slug == "" {
		return ""
	}
	return slug
}

// TenantResolver inspects the Host header and, when it names an existing
// store, attaches that store to the request context. An unknown subdomain
// is a soft miss: the request continues without a tenant and the handler
// decides what a missing storefront means.
func (mw *Middleware) TenantResolver(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := candidateSlug(r.Host, mw.cfg.Tenant.RootDomain, mw.cfg.Tenant.DevMode)
		if slug == "" {
			next.ServeHTTP(w, r)
			return
		}

		store, err := mw.storeService.GetStoreBySlug(r.Context(), slug)
		if err != nil {
			if !lib.IsNotFound(err) {
				mw.logger.Error("Tenant lookup failed", gecho.Field("slug", slug), gecho.Field("error", err))
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), TenantContextKey, store)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTenantFromContext extracts the resolved store, if any
func GetTenantFromContext(ctx context.Context) (*tables.Store, bool) {
	store, ok := ctx.Value(TenantContextKey).(*tables.Store)
	return store, ok
}

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
	"github.com/goer/asana-clone/pkg/apierrors"
)

const principalKey = "principal"

// RequireAuth guards the interactive API: a missing, malformed, expired or
// unverifiable bearer token ends the request with 401. There is no fallback
// on this path.
func RequireAuth(identity ports.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		principal, err := identity.ResolveStrict(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAPIKey gates the automation surface with a single shared key. An
// empty configured key disables the surface entirely.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		provided := c.GetHeader("X-API-Key")
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Next()
	}
}

// SoftIdentity resolves the optional X-Acting-User email hint. Resolution
// cannot fail for the caller: no hint or an unknown one scopes the request to
// the fallback account instead of rejecting it. A zero principal means the
// fallback account itself is gone, which is a server fault, not a caller one.
func SoftIdentity(identity ports.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		hint := strings.TrimSpace(c.GetHeader("X-Acting-User"))
		principal := identity.ResolveSoft(c.Request.Context(), hint)
		if principal.UserID == 0 {
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalServerError, GetLang(c)),
			)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the identity stored by RequireAuth or SoftIdentity.
func GetPrincipal(c *gin.Context) domain.Principal {
	if v, exists := c.Get(principalKey); exists {
		if p, ok := v.(domain.Principal); ok {
			return p
		}
	}
	return domain.Principal{}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourism/internal/auth"
	"tourism/internal/domain"
)

const identityKey = "identity"

// Identity resolves the caller from the session cookie, falling back to an
// Authorization bearer token. Anonymous callers get the zero Identity.
func Identity(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionIdentity(c)
		if !ok && tokens != nil {
			if raw := bearerToken(c.GetHeader("Authorization")); raw != "" {
				if parsed, err := tokens.Parse(raw); err == nil {
					id = parsed
				}
			}
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity resolved for this request.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

// CurrentIdentity is IdentityFrom without the presence flag.
func CurrentIdentity(c *gin.Context) domain.Identity {
	id, _ := IdentityFrom(c)
	return id
}

// RequireUser admits only user principals; everyone else goes to /login.
func RequireUser() gin.HandlerFunc {
	return requireIdentity("/login", domain.Identity.IsUser)
}

// RequireAdmin admits only admin principals; everyone else goes to /admin_login.
func RequireAdmin() gin.HandlerFunc {
	return requireIdentity("/admin_login", domain.Identity.IsAdmin)
}

func requireIdentity(loginPath string, allowed func(domain.Identity) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(CurrentIdentity(c)) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

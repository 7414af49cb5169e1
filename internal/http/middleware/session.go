package middleware

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"tourism/internal/domain"
)

const (
	sessionSubjectKey = "subject_id"
	sessionRoleKey    = "role"
	sessionEmailKey   = "email"
)

// Flash is a one-shot message shown on the next page view.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func init() {
	gob.Register(Flash{})
}

type SessionConfig struct {
	Secret     string
	CookieName string
	Secure     bool
}

// Sessions installs the signed cookie store that carries identity and flashes.
func Sessions(cfg SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.CookieName, store)
}

// SignIn replaces whatever the session held with the given identity. The
// cookie is written by the next AddFlash.
func SignIn(c *gin.Context, id domain.Identity, email string) {
	s := sessions.Default(c)
	s.Clear()
	s.Set(sessionSubjectKey, int64(id.SubjectID))
	s.Set(sessionRoleKey, string(id.Role))
	s.Set(sessionEmailKey, email)
	c.Set(identityKey, id)
}

// SignOut drops the identity and every other session value.
func SignOut(c *gin.Context) {
	sessions.Default(c).Clear()
	c.Set(identityKey, domain.Identity{})
}

// AddFlash queues a message and saves the session.
func AddFlash(c *gin.Context, category, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return s.Save()
}

// ConsumeFlashes returns the queued messages and clears them.
func ConsumeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return []Flash{}
	}
	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	_ = s.Save()
	return out
}

func sessionIdentity(c *gin.Context) (domain.Identity, bool) {
	s := sessions.Default(c)
	sub, ok := s.Get(sessionSubjectKey).(int64)
	if !ok || sub <= 0 {
		return domain.Identity{}, false
	}
	role, _ := s.Get(sessionRoleKey).(string)
	id := domain.Identity{SubjectID: domain.ID(sub), Role: domain.Role(role)}
	return id, id.Authenticated()
}

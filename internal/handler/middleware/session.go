package middleware

import (
	"maison-storefront/internal/pkg/clock"
	"maison-storefront/internal/pkg/config"
	"maison-storefront/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type SessionMiddleware struct {
	cfg   config.SessionConfig
	clock clock.Clock
}

const ctxSessionKey = "session_key"

func NewSessionMiddleware(cfg config.SessionConfig, clk clock.Clock) *SessionMiddleware {
	return &SessionMiddleware{
		cfg:   cfg,
		clock: clk,
	}
}

// EnsureSession guarantees every request carries a cart session key,
// minting one and setting the cookie when the browser sends none.
// The same key is reused for the lifetime of the cookie, so a
// returning visitor sees the same cart.
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := session.FromCookie(c)
		if key == "" {
			key = session.NewKey(m.clock.Now())
			session.SetCookie(c, m.cfg, key)
		}

		c.Set(ctxSessionKey, key)
		c.Next()
	}
}

func GetSessionKey(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return "", false
	}

	key, ok := value.(string)
	return key, ok && key != ""
}

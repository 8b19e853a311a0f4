package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"maison-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName matches the storage key the storefront UI historically
	// used for its anonymous cart identity.
	CookieName = "cart_session_key"

	keyPrefix = "session_"

	// The key never expires on its own; it only scopes a disposable cart.
	cookieMaxAge = 10 * 365 * 24 * 3600
)

// NewKey mints an opaque per-browser key: timestamp plus random suffix.
// Uniqueness is best-effort, which is acceptable for cart scoping.
func NewKey(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", keyPrefix, now.UnixMilli(), suffix)
}

func SetCookie(c *gin.Context, cfg config.SessionConfig, key string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		CookieName,
		key,
		cookieMaxAge,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
}

func ClearCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		CookieName,
		"",
		-1,
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true,
	)
}

func FromCookie(c *gin.Context) string {
	key, _ := c.Cookie(CookieName)
	return key
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package cookie

import (
	"net/http"
	"time"

	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	CartCookieName        = "cart_id"
	CartHeaderName        = "X-Cart-ID"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		AccessTokenCookieName,
		accessToken,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetCartID issues the cart cookie and mirrors the id in a header for non-browser clients.
func SetCartID(c *gin.Context, cfg config.CookieConfig, cartID string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(CartCookieName, cartID, int(ttl.Seconds()), "/", cfg.Domain, cfg.Secure, true)
	c.Header(CartHeaderName, cartID)
}

// GetCartID prefers the explicit header over the cookie.
func GetCartID(c *gin.Context) string {
	if id := c.GetHeader(CartHeaderName); id != "" {
		return id
	}
	id, _ := c.Cookie(CartCookieName)
	return id
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

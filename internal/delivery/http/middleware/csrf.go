package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	CSRFCookieName = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"

	csrfTokenLength = 32
	csrfTokenExpiry = 24 * time.Hour
)

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CSRFMiddleware applies the double-submit cookie pattern to requests
// authenticated via the auth_token cookie. The browser sends that cookie
// automatically, so mutating cookie-session requests must echo the csrf_token
// cookie in the X-CSRF-Token header, which a cross-site attacker cannot do.
//
// Requests carrying an Authorization header are skipped: a bearer token has
// to be attached explicitly by the client, so it cannot be forged cross-site.
// Requests without an auth_token cookie (login, register, refresh, public
// reads) have no session to ride and are skipped too.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFCookieName)
		if err != nil || csrfCookie == "" {
			newToken, genErr := generateCSRFToken()
			if genErr != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}
			// HttpOnly stays false so the frontend can read the value back
			// into the header.
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFCookieName, newToken, int(csrfTokenExpiry.Seconds()), "/", "", true, false)
			csrfCookie = newToken
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.GetHeader("Authorization") != "" {
			c.Next()
			return
		}
		if authCookie, err := c.Cookie("auth_token"); err != nil || authCookie == "" {
			c.Next()
			return
		}

		headerToken := c.GetHeader(CSRFHeaderName)
		if headerToken == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		if headerToken != csrfCookie {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

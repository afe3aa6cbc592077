package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"astroportal/pkg/utils"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecretMiddleware guards the internal generation endpoints.
// The expected secret is injected at startup and never defaulted; the
// app refuses to boot without one.
func WebhookSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(WebhookSecretHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook secret")
			c.Abort()
			return
		}
		c.Next()
	}
}

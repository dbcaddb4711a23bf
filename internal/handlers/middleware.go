package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const subjectKey = "subject"

// operatorMiddleware requires a bearer token when a password is configured.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	auth := h.services.Authorization
	if auth == nil || !auth.Enabled() {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	subject, err := auth.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(subjectKey, subject)
	c.Next()
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the context key under which the acting user's external id is
// stored for handlers.
const UserIDKey = "userID"

// UserIDHeader carries the acting user's external id. Identity is a
// pass-through: the header value is trusted as-is and validated against the
// user table only where an operation records authorship.
const UserIDHeader = "X-User-Id"

// RequireIdentity rejects requests without a well-formed X-User-Id header
// and stores the parsed id in the Gin context.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The 'X-User-Id' header is required"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The 'X-User-Id' header must be a valid UUID"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack/internal/models"
	"fintrack/internal/token"
)

// UserIDKey is the gin context key holding the authenticated user's ID.
const UserIDKey = "userID"

// UserLookup resolves the subject of a verified token.
type UserLookup interface {
	GetUserByID(id string) (*models.User, error)
}

// AuthMiddleware verifies the Bearer token and sets the user ID in the
// context. Every failure, including a token for a user that no longer
// exists, produces the same UNAUTHORIZED response.
func AuthMiddleware(codec *token.Codec, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		claims, err := codec.Verify(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		userID, ok := token.UserID(claims)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if _, err := users.GetUserByID(userID); err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tokenString = strings.TrimSpace(tokenString)
	return tokenString, tokenString != ""
}

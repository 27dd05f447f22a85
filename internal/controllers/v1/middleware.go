package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/monet-app/backend/internal/models"
)

// RequireAuth verifies the Authorization header and loads the user the
// token was issued for. Requests without a valid token are aborted
// with a 401.
func (co Controller) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: "the request must be authenticated with a Bearer token",
			})
			return
		}

		userID, err := co.tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: err.Error(),
			})
			return
		}

		var user models.User
		err = co.db.First(&user, "id = ?", userID).Error
		if err != nil {
			// The account may have been deleted after the token was issued
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: "the token is invalid or expired",
			})
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

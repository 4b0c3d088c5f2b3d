package cookie

import (
	"github.com/gin-gonic/gin"
)

// The identity provider sets this cookie on the shared domain; we only read it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

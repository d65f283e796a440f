package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/helpers"
	"github.com/mygroup/simple-community/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth is the gate in front of every protected route: it extracts the bearer
// token from the Authorization header, validates it, and binds the subject id
// into the Gin context. It runs before any service method, so it writes its
// own terminal error response instead of raising into the handler chain.
func Auth(tokens *helpers.TokenManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortErr(c, logger, apperr.New(apperr.InvalidToken, "Token is missing"))
			return
		}
		userID, err := tokens.Validate(token)
		if err != nil {
			response.AbortErr(c, logger, err)
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/mygroup/simple-community/internal/interface/http"
	"github.com/mygroup/simple-community/internal/interface/middleware"
	"github.com/mygroup/simple-community/pkg/helpers"
)

// UserModule wires user HTTP handlers into routes.
// Public: signup, login, and the credential-recovery endpoints.
// Protected: profile/password modification and account removal.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
	Logger  *logrus.Logger
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager, logger *logrus.Logger) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Logger: logger}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users/signup", m.Handler.Signup)
	rg.POST("/users/login", m.Handler.Login)
	rg.GET("/users/find-email", m.Handler.FindEmail)
	rg.GET("/users/find-pw", m.Handler.ConfirmAccount)
	rg.PUT("/users/find-pw", m.Handler.ResetPassword)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.Logger))
	{
		auth.PUT("/users", m.Handler.Modify)
		auth.DELETE("/users", m.Handler.Remove)
	}
}

package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/mygroup/simple-community/internal/interface/http"
	"github.com/mygroup/simple-community/internal/interface/middleware"
	"github.com/mygroup/simple-community/pkg/helpers"
)

// PostModule wires post HTTP handlers into routes.
// Browsing and single-post lookup are public; every mutation requires a
// valid bearer token.
type PostModule struct {
	Handler *handlers.PostHandler
	Tokens  *helpers.TokenManager
	Logger  *logrus.Logger
}

func NewPostModule(h *handlers.PostHandler, tokens *helpers.TokenManager, logger *logrus.Logger) *PostModule {
	return &PostModule{Handler: h, Tokens: tokens, Logger: logger}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/:id", m.Handler.GetByID)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens, m.Logger))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Modify)
		auth.DELETE("/posts/:id", m.Handler.Remove)
	}
}

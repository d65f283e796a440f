package router

import (
	app "github.com/mygroup/simple-community/internal/application"
	"github.com/mygroup/simple-community/internal/container"
	pginfra "github.com/mygroup/simple-community/internal/infrastructure/postgres"
	handlers "github.com/mygroup/simple-community/internal/interface/http"
	"github.com/mygroup/simple-community/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()
	tokens := container.GetTokens()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	postRepo := pginfra.NewPostRepository(container.GetPGPool())

	userSvc := app.NewUserService(userRepo, tokens, logger)
	postSvc := app.NewPostService(userRepo, postRepo, container.GetRedis(), logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), tokens, logger))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), tokens, logger))
}

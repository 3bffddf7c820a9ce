// Package router assembles the gin engine and its routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/http/middleware"
)

// NewRouter wires every route. No route requires a token.
func NewRouter(system *handler.SystemHandler, auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// Development setting: any origin may call the API.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization", middleware.HeaderRequestID)
	r.Use(cors.New(corsCfg))

	r.GET("/", system.Root)
	r.GET("/health", system.Health)
	r.GET("/test-auth", system.AuthSelfTest)

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	r.GET("/tasks/:email", tasks.List)
	r.POST("/tasks", tasks.Create)
	r.PUT("/tasks/:task_id", tasks.Update)
	r.DELETE("/tasks/:task_id", tasks.Delete)

	return r
}

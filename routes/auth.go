package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/auth"
)

func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(deps.Users))
	}
}

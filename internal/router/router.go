package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/workdeck-dev/workdeck/internal/handlers"
	"github.com/workdeck-dev/workdeck/internal/middleware"
	"github.com/workdeck-dev/workdeck/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	user := r.Group("/user")
	{
		user.POST("/create", handlers.CreateUser)
		user.POST("/token", handlers.CreateToken)

		me := user.Group("/me", middleware.AuthMiddleware())
		{
			me.GET("", handlers.Me)
			me.PATCH("", handlers.UpdateMe)
			me.DELETE("", handlers.DeleteMe)
		}
	}

	workspaces := r.Group("/workspace", middleware.AuthMiddleware())
	{
		workspaces.GET("", handlers.ListWorkspaces)
		workspaces.POST("", handlers.CreateWorkspace)
		workspaces.GET("/:id", handlers.GetWorkspace)
		workspaces.PATCH("/:id", handlers.UpdateWorkspace)
		workspaces.DELETE("/:id", handlers.DeleteWorkspace)
	}

	todos := r.Group("/todo", middleware.AuthMiddleware())
	{
		todos.GET("", handlers.ListTodos)
		todos.POST("", handlers.CreateTodo)
		todos.PATCH("/:id", handlers.UpdateTodo)
		todos.DELETE("/:id", handlers.DeleteTodo)
	}

	return r
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	appsvc "eventbook/internal/app"
	"eventbook/internal/bootstrap"
	"eventbook/internal/repository"
	"eventbook/internal/transport/http/handler"
	"eventbook/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(app.Logger), gin.Recovery(), cors.Default())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "eventbook API is running"})
	})
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.DB)
	eventRepo := repository.NewEventRepository(app.DB)
	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	userService := appsvc.NewUserService(userRepo)
	eventService := appsvc.NewEventService(eventRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService)

	authed := middleware.AuthJWT(app.Config.Auth.JWTSecret)
	loginLimiter := middleware.NewRateLimiter(app.Config.Auth.LoginRPS, app.Config.Auth.LoginBurst)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimit(loginLimiter))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	events := api.Group("/events")
	events.Use(authed)
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)
	events.GET("/:id", eventHandler.Get)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	users := api.Group("/users")
	users.Use(authed)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateMe)
	users.PUT("/me/password", userHandler.ChangePassword)
	users.DELETE("/me", userHandler.DeleteMe)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return router
}

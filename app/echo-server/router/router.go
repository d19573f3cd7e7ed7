package router

import (
	"sparetime/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.Me, authRequired)
	users.PUT("/me/interests", handler.UpdateInterests, authRequired)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)
	reco.GET("", handler.Recommend)
	reco.POST("/rating", handler.Rate)

	api.GET("/videos/:video_id", handler.VideoInfo, authRequired)
}

func SetupQueueRoutes(api *echo.Group, handler *rest.QueueHandler, authRequired echo.MiddlewareFunc) {
	queue := api.Group("/queue", authRequired)
	queue.POST("", handler.Add)
	queue.GET("", handler.List)
	queue.DELETE("", handler.Remove)
}

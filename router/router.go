package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	analyzeCtrl interface{ Analyze(echo.Context) error },
	planCtrl interface{ Generate(echo.Context) error },
	forumCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		AddComment(echo.Context) error
		AddReply(echo.Context) error
		Like(echo.Context) error
	},
	weatherCtrl interface{ Forecast(echo.Context) error },
	marketCtrl interface{ Prices(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	api := e.Group("/api")

	api.GET("/health", healthCtrl.Health)

	api.POST("/analyze", analyzeCtrl.Analyze)
	api.POST("/resources", planCtrl.Generate)

	api.GET("/forum-posts", forumCtrl.List)
	api.POST("/forum-posts", forumCtrl.Create)
	api.POST("/forum-posts/:id/comments", forumCtrl.AddComment)
	api.POST("/forum-posts/:postId/comments/:commentRef/reply", forumCtrl.AddReply)
	api.POST("/forum-posts/:id/like", forumCtrl.Like)

	api.GET("/weather", weatherCtrl.Forecast)
	api.GET("/market-prices", marketCtrl.Prices)

	return e
}

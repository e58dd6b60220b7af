package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/urbanshade/notify-center/internal/api/handlers/dnd"
	"github.com/urbanshade/notify-center/internal/api/handlers/notification"
	"github.com/urbanshade/notify-center/internal/middlewares"
)

func New(dndHandler *dnd.Handler, notifHandler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	dndAPI := e.Group("/api/dnd")
	{
		dndAPI.GET("/", dndHandler.Get)
		dndAPI.GET("/remaining", dndHandler.TimeUntilEnd)
		dndAPI.POST("/toggle", dndHandler.Toggle)
		dndAPI.PUT("/", dndHandler.Set)
		dndAPI.PATCH("/schedule", dndHandler.UpdateSchedule)
		dndAPI.PATCH("/settings", dndHandler.UpdateSettings)
	}

	notifAPI := e.Group("/api/notifications")
	{
		notifAPI.POST("/", notifHandler.Create)
		notifAPI.GET("/", notifHandler.List)
		notifAPI.GET("/apps", notifHandler.Apps)
		notifAPI.GET("/counts", notifHandler.Counts)
		notifAPI.POST("/read-all", notifHandler.MarkAllAsRead)
		notifAPI.POST("/:id/read", notifHandler.MarkAsRead)
		notifAPI.POST("/:id/dismiss", notifHandler.Dismiss)
		notifAPI.POST("/:id/actions", notifHandler.ExecuteAction)
		notifAPI.DELETE("/:id", notifHandler.Delete)
		notifAPI.DELETE("/", notifHandler.Clear)
	}

	return e
}

package router

import (
	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/http/handler"
	"sauti.app/api/internal/service"
)

type RouterConfig struct {
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	channelHandler := handler.NewChannelHandler(services.Ussd(), services.Sms())
	ChannelRouter(router.Group("/channels"), channelHandler)

	v1 := router.Group("/api/v1")
	{
		reportHandler := handler.NewReportHandler(services.Intake(), services.Reports())
		ReportRouter(v1.Group("/reports"), reportHandler)

		analyticsHandler := handler.NewAnalyticsHandler(services.Analytics())
		AnalyticsRouter(v1.Group("/analytics"), analyticsHandler)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/http/handler"
)

func AnalyticsRouter(rg *gin.RouterGroup, h *handler.AnalyticsHandler) {
	rg.GET("", h.Aggregate)
}

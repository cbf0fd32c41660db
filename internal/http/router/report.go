package router

import (
	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/http/handler"
)

func ReportRouter(rg *gin.RouterGroup, h *handler.ReportHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/status", h.UpdateStatus)
}

package router

import (
	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/http/handler"
)

func ChannelRouter(rg *gin.RouterGroup, h *handler.ChannelHandler) {
	rg.POST("/ussd", h.HandleUssd)
	rg.POST("/sms", h.HandleSms)
}

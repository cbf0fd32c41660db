package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sauti.app/api/internal/service"
)

// ChannelHandler terminates the telecom gateway callbacks. Both gateways
// expect 200 with a plain-text body for every protocol outcome; non-200s make
// them retry, which would duplicate reports.
type ChannelHandler struct {
	ussd service.UssdService
	sms  service.SmsService
}

func NewChannelHandler(ussd service.UssdService, sms service.SmsService) *ChannelHandler {
	return &ChannelHandler{ussd: ussd, sms: sms}
}

// HandleUssd serves one step of a USSD dialogue. The gateway posts the full
// accumulated input path in text on every request.
func (h *ChannelHandler) HandleUssd(c *gin.Context) {
	sessionID := c.PostForm("sessionId")
	phoneNumber := c.PostForm("phoneNumber")
	text := c.PostForm("text")

	response := h.ussd.HandleInput(c.Request.Context(), sessionID, phoneNumber, text)
	c.String(http.StatusOK, response)
}

// HandleSms serves one inbound SMS and replies with the acknowledgement or
// help text the gateway relays to the sender.
func (h *ChannelHandler) HandleSms(c *gin.Context) {
	from := c.PostForm("from")
	body := c.PostForm("text")

	reply := h.sms.HandleMessage(c.Request.Context(), from, body)
	c.String(http.StatusOK, reply)
}

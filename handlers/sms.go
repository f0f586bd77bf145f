// File: handlers/sms.go
package handlers

import (
	"net/http"

	"glospa/models"
	"glospa/services/sms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SMSHandler exposes the inbound message webhook.
type SMSHandler struct {
	Engine sms.Engine
	Logger *zap.Logger
}

// NewSMSHandler constructs an SMSHandler.
func NewSMSHandler(engine sms.Engine, logger *zap.Logger) *SMSHandler {
	return &SMSHandler{Engine: engine, Logger: logger}
}

// Webhook handles POST /api/sms/webhook. The gateway delivers one inbound
// message per request; the response always carries the processing outcome so
// the gateway never retries on an application-level failure. Both a JSON body
// and a Twilio-style form post are accepted.
func (h *SMSHandler) Webhook(c *gin.Context) {
	var msg models.IncomingMessage
	switch c.ContentType() {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		msg = models.IncomingMessage{
			From:      c.PostForm("From"),
			To:        c.PostForm("To"),
			Body:      c.PostForm("Body"),
			MessageID: c.PostForm("MessageSid"),
		}
	default:
		if err := c.ShouldBindJSON(&msg); err != nil {
			h.Logger.Error("Webhook: invalid request body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid request body",
				"message": err.Error(),
			})
			return
		}
	}
	if msg.From == "" || msg.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "both 'from' and 'body' are required",
		})
		return
	}

	outcome := h.Engine.HandleIncomingMessage(c.Request.Context(), msg)
	c.JSON(http.StatusOK, outcome)
}

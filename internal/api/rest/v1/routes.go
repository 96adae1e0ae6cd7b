package v1

import (
	"rsa_playground_service/internal/domain/sessions"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	sessionService sessions.SessionService,
	messageService sessions.MessageService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Session Routes
	sessionHandler := NewSessionHandler(sessionService)
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions", sessionHandler.List)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.DELETE("/sessions/:id", sessionHandler.DeleteByID)

	// Message Routes
	messageHandler := NewMessageHandler(messageService)
	v1.POST("/sessions/:id/text", messageHandler.EncryptText)
	v1.POST("/sessions/:id/files", messageHandler.UploadFile)
	v1.GET("/sessions/:id/messages", messageHandler.ListBySession)
	v1.GET("/messages/:id", messageHandler.GetByID)
	v1.POST("/messages/:id/decrypt", messageHandler.Decrypt)
	v1.POST("/messages/:id/verify", messageHandler.Verify)
	v1.DELETE("/messages/:id", messageHandler.DeleteByID)
}

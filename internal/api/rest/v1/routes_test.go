//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rsa_playground_service/internal/domain/sessions"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockSessionService := new(MockSessionService)
	mockMessageService := new(MockMessageService)

	r := gin.Default()

	// Setup mocks so reached handlers have data to serve
	mockSessionService.On("Create", mock.Anything, mock.Anything).
		Return(&sessions.Session{ID: "abc-123"}, nil)
	mockSessionService.On("List", mock.Anything, mock.Anything).
		Return([]*sessions.Session{}, nil)
	mockSessionService.On("GetByID", mock.Anything, mock.Anything).
		Return(&sessions.Session{ID: "abc-123"}, nil)
	mockSessionService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	mockMessageService.On("GetByID", mock.Anything, mock.Anything).
		Return(&sessions.Message{ID: "msg-123"}, nil)
	mockMessageService.On("Verify", mock.Anything, mock.Anything).Return(true, nil)
	mockMessageService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	SetupRoutes(r, mockSessionService, mockMessageService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/rps/sessions"},
		{"GET", "/api/v1/rps/sessions"},
		{"GET", "/api/v1/rps/sessions/abc-123"},
		{"DELETE", "/api/v1/rps/sessions/abc-123"},
		{"POST", "/api/v1/rps/sessions/abc-123/text"},
		{"POST", "/api/v1/rps/sessions/abc-123/files"},
		{"GET", "/api/v1/rps/messages/msg-123"},
		{"POST", "/api/v1/rps/messages/msg-123/verify"},
		{"DELETE", "/api/v1/rps/messages/msg-123"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

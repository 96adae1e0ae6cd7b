package v1

import (
	"fmt"
	"net/http"
	"time"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler defines the interface for handling session-related operations
type SessionHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// SessionHandler struct holds the services
type sessionHandler struct {
	sessionService sessions.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService sessions.SessionService) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
	}
}

// Create handles the POST request to create a session with a fresh key pair
// @Summary Create an encryption session
// @Description Generate a key pair of the requested bit size and store it as a new session. An empty body selects the default key size.
// @Tags Session
// @Accept json
// @Produce json
// @Param requestBody body CreateSessionRequest false "Session Key Size"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func (handler *sessionHandler) Create(ctx *gin.Context) {
	var request CreateSessionRequest

	// An empty body falls through to the default key size
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid session data: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return
		}
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	session, err := handler.sessionService.Create(ctx, request.Bits)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating session: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(session))
}

// List handles the GET request to list sessions with optional query parameters
// @Summary List encryption sessions based on query parameters
// @Description Fetch a list of sessions filtered by key size and creation date, with pagination and sorting options.
// @Tags Session
// @Accept json
// @Produce json
// @Param bits query int false "Key size in bits"
// @Param dateTimeCreated query string false "Session Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions [get]
func (handler *sessionHandler) List(ctx *gin.Context) {
	query := sessions.NewSessionQuery()

	if bits := ctx.Query("bits"); len(bits) > 0 {
		query.Bits = utils.ConvertToInt(bits)
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	sessionList, err := handler.sessionService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []SessionResponse{}
	for _, session := range sessionList {
		listResponse = append(listResponse, newSessionResponse(session))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a session by ID
// @Summary Retrieve a session by ID
// @Description Fetch a session by ID, including its key size and public key material.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	session, err := handler.sessionService.GetByID(ctx, sessionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("session with id %s not found", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// DeleteByID handles the DELETE request to delete a session by ID
// @Summary Delete a session by ID
// @Description Delete a session together with every message encrypted under it.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (handler *sessionHandler) DeleteByID(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	if err := handler.sessionService.DeleteByID(ctx, sessionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting session with id %s", sessionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted session with id %s", sessionID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

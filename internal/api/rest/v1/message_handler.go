package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler defines the interface for handling message-related operations
type MessageHandler interface {
	EncryptText(ctx *gin.Context)
	UploadFile(ctx *gin.Context)
	ListBySession(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Verify(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// MessageHandler struct holds the services
type messageHandler struct {
	messageService sessions.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService sessions.MessageService) MessageHandler {
	return &messageHandler{
		messageService: messageService,
	}
}

// EncryptText handles the POST request to encrypt a text message under a session
// @Summary Encrypt a text message
// @Description Encrypt text character by character under the session's public key and store the resulting units.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body EncryptTextRequest true "Plaintext"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/text [post]
func (handler *messageHandler) EncryptText(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var request EncryptTextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	message, err := handler.messageService.EncryptText(ctx, sessionID, request.Text)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error encrypting text: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newMessageResponse(message))
}

// UploadFile handles the POST request to encrypt an uploaded file under a session
// @Summary Encrypt an uploaded file
// @Description Encrypt the uploaded file byte by byte under the session's public key. The content type is sniffed when the upload does not declare one.
// @Tags Message
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "File to encrypt"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /sessions/{id}/files [post]
func (handler *messageHandler) UploadFile(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "no file provided in upload request"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to open file '%s': %v", fileHeader.Filename, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to read file '%s': %v", fileHeader.Filename, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	message, err := handler.messageService.EncryptBytes(ctx, sessionID, fileHeader.Filename, contentType, data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error encrypting file: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newMessageResponse(message))
}

// ListBySession handles the GET request to list a session's messages with optional query parameters
// @Summary List messages of a session based on query parameters
// @Description Fetch a list of messages encrypted under a session, filtered by kind and name, with pagination and sorting options.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param kind query string false "Message Kind (text/bytes)"
// @Param name query string false "File Name"
// @Param dateTimeCreated query string false "Message Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/messages [get]
func (handler *messageHandler) ListBySession(ctx *gin.Context) {
	query := sessions.NewMessageQuery()
	query.SessionID = ctx.Param("id")

	if kind := ctx.Query("kind"); len(kind) > 0 {
		query.Kind = kind
	}

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
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

	messages, err := handler.messageService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []MessageResponse{}
	for _, message := range messages {
		listResponse = append(listResponse, newMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a message by ID
// @Summary Retrieve a message by ID
// @Description Fetch a message by ID, including its metadata and ciphertext units.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id} [get]
func (handler *messageHandler) GetByID(ctx *gin.Context) {
	messageID := ctx.Param("id")

	message, err := handler.messageService.GetByID(ctx, messageID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("message with id %s not found", messageID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newMessageResponse(message))
}

// Decrypt handles the POST request to recover a message's plaintext
// @Summary Decrypt a stored message
// @Description Decrypt the stored units with the session's private key. Text messages return JSON, byte messages stream back under their stored content type.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} DecryptTextResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages/{id}/decrypt [post]
func (handler *messageHandler) Decrypt(ctx *gin.Context) {
	messageID := ctx.Param("id")

	decrypted, err := handler.messageService.Decrypt(ctx, messageID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("could not decrypt message with id %s: %v", messageID, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if decrypted.Kind == sessions.MessageKindText {
		ctx.JSON(http.StatusOK, DecryptTextResponse{
			MessageID: decrypted.MessageID,
			Kind:      decrypted.Kind,
			Text:      decrypted.Text,
		})
		return
	}

	filename := decrypted.Name
	if filename == "" {
		filename = decrypted.MessageID
	}

	contentType := decrypted.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx.Writer.Header().Set("Content-Type", contentType)
	ctx.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Writer.WriteHeader(http.StatusOK)

	if _, err := ctx.Writer.Write(decrypted.Data); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("could not write bytes: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}

// Verify handles the POST request to check a message's round trip
// @Summary Verify a stored message
// @Description Decrypt the stored units and compare the plaintext digest against the checksum recorded at encryption time.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages/{id}/verify [post]
func (handler *messageHandler) Verify(ctx *gin.Context) {
	messageID := ctx.Param("id")

	matches, err := handler.messageService.Verify(ctx, messageID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("could not verify message with id %s: %v", messageID, err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{
		MessageID: messageID,
		Matches:   matches,
	})
}

// DeleteByID handles the DELETE request to delete a message by ID
// @Summary Delete a message by ID
// @Description Delete a message and its stored ciphertext by ID.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id} [delete]
func (handler *messageHandler) DeleteByID(ctx *gin.Context) {
	messageID := ctx.Param("id")

	if err := handler.messageService.DeleteByID(ctx, messageID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting message with id %s", messageID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted message with id %s", messageID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

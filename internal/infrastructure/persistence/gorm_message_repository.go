package persistence

import (
	"context"
	"errors"
	"fmt"

	"rsa_playground_service/internal/domain/sessions"
	"rsa_playground_service/internal/infrastructure/persistence/models"
	"rsa_playground_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a new GORM-based MessageRepository implementation
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (sessions.MessageRepository, error) {
	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *sessions.Message) error {
	// Validate domain entity (business rules)
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.MessageModel{}
	model.FromDomain(message)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Info("Created message with id ", message.ID)
	return nil
}

func (r *gormMessageRepository) List(ctx context.Context, query *sessions.MessageQuery) ([]*sessions.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MessageModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MessageModel{})

	// Apply filters
	if query.SessionID != "" {
		dbQuery = dbQuery.Where("session_id = ?", query.SessionID)
	}
	if query.Kind != "" {
		dbQuery = dbQuery.Where("kind = ?", query.Kind)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	// Convert to domain models
	domainList := make([]*sessions.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, messageID string) (*sessions.Message, error) {
	var model models.MessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message with ID %s not found", messageID)
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMessageRepository) DeleteByID(ctx context.Context, messageID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", messageID).Delete(&models.MessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	r.logger.Info("Deleted message with id ", messageID)
	return nil
}

func (r *gormMessageRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.MessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session messages: %w", err)
	}

	r.logger.Info("Deleted messages of session with id ", sessionID)
	return nil
}

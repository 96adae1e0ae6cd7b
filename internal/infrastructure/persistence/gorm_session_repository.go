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

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *sessions.Session) error {
	// Validate domain entity (business rules)
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.SessionModel{}
	model.FromDomain(session)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("Created session with id ", session.ID)
	return nil
}

func (r *gormSessionRepository) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.Session, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SessionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SessionModel{})

	// Apply filters
	if query.Bits > 0 {
		dbQuery = dbQuery.Where("bits = ?", query.Bits)
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
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	// Convert to domain models
	domainList := make([]*sessions.Session, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session with ID %s not found", sessionID)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	r.logger.Info("Deleted session with id ", sessionID)
	return nil
}

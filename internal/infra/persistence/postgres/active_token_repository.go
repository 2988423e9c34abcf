package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activeTokenRepository implements the domain's ActiveTokenRepository interface.
type activeTokenRepository struct {
	db *gorm.DB
}

// NewActiveTokenRepository is the constructor for activeTokenRepository.
func NewActiveTokenRepository(db *gorm.DB) repository.ActiveTokenRepository {
	return &activeTokenRepository{db: db}
}

// Create registers a freshly issued access token for a user.
func (repo *activeTokenRepository) Create(ctx context.Context, token *entity.ActiveToken) error {
	tokenM := fromActiveTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("access token already registered")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to register access token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a ledger entry by the access token string.
func (repo *activeTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ActiveToken, error) {
	var tokenM model.ActiveTokenModel
	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActiveTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toActiveTokenDomain(&tokenM), nil
}

// Update persists changes to a ledger entry.
func (repo *activeTokenRepository) Update(ctx context.Context, token *entity.ActiveToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActiveTokenModel{}).
		Where("token = ?", token.Token).
		Update("is_active", token.IsActive)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update access token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrActiveTokenNotFound
	}

	return nil
}

func toActiveTokenDomain(m *model.ActiveTokenModel) *entity.ActiveToken {
	return &entity.ActiveToken{
		Token:     m.Token,
		UserID:    m.UserID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func fromActiveTokenDomain(token *entity.ActiveToken) *model.ActiveTokenModel {
	return &model.ActiveTokenModel{
		Token:     token.Token,
		UserID:    token.UserID,
		IsActive:  token.IsActive,
		CreatedAt: token.CreatedAt,
	}
}

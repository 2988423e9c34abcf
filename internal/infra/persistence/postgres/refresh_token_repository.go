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

// refreshTokenRepository implements the domain's RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("refresh token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a refresh token record by its opaque token string.
// Expiry is not checked here; the store decides what expiry means.
func (repo *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// Delete removes a single refresh token by its token string.
func (repo *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, it means the token was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteByUserID removes every refresh token owned by the user and returns
// the number of deleted rows.
func (repo *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

func toRefreshTokenDomain(m *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		Token:     m.Token,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func fromRefreshTokenDomain(token *entity.RefreshToken) *model.RefreshTokenModel {
	return &model.RefreshTokenModel{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
}

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

// principalRepository implements the domain's PrincipalRepository interface.
type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

// FindByUsername retrieves a single principal by its unique username.
func (repo *principalRepository) FindByUsername(ctx context.Context, username string) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPrincipalDomain(&principalM), nil
}

// FindByUserID retrieves a single principal by its stable user identifier.
func (repo *principalRepository) FindByUserID(ctx context.Context, userID string) (*entity.Principal, error) {
	var principalM model.PrincipalModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&principalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPrincipalDomain(&principalM), nil
}

// ExistsByUsername reports whether a principal with the username exists.
func (repo *principalRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PrincipalModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// Create persists a new principal entity to the storage.
func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalM := fromPrincipalDomain(principal)

	if err := repo.db.WithContext(ctx).Create(principalM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create principal")
	}

	principal.CreatedAt = principalM.CreatedAt

	return nil
}

func toPrincipalDomain(m *model.PrincipalModel) *entity.Principal {
	return &entity.Principal{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Locked:       m.Locked,
		Disabled:     m.Disabled,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
	}
}

func fromPrincipalDomain(principal *entity.Principal) *model.PrincipalModel {
	return &model.PrincipalModel{
		UserID:       principal.UserID,
		Username:     principal.Username,
		PasswordHash: principal.PasswordHash,
		Locked:       principal.Locked,
		Disabled:     principal.Disabled,
		ExpiresAt:    principal.ExpiresAt,
		CreatedAt:    principal.CreatedAt,
	}
}

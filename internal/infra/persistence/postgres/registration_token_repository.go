package postgres

import (
	"context"
	"time"

	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/errors"
	"uiagate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type registrationTokenRepository struct {
	db *gorm.DB
}

// NewRegistrationTokenRepository is the constructor for registrationTokenRepository.
func NewRegistrationTokenRepository(db *gorm.DB) repository.RegistrationTokenRepository {
	return &registrationTokenRepository{db: db}
}

func (repo *registrationTokenRepository) Create(ctx context.Context, token *entity.RegistrationToken) error {
	row := &model.RegistrationTokenModel{
		Token:     token.Token,
		CreatedBy: token.CreatedBy,
		Slots:     token.Slots,
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	}

	if err := conn(ctx, repo.db).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidParam.WithMessage("Registration token already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidParam.WithMessage("Registration token slots must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create registration token")
	}

	token.CreatedAt = row.CreatedAt

	return nil
}

func (repo *registrationTokenRepository) FindByToken(ctx context.Context, token string) (*entity.RegistrationToken, error) {
	var row model.RegistrationTokenModel

	if err := conn(ctx, repo.db).Where("token = ?", token).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find registration token")
	}

	return &entity.RegistrationToken{
		Token:     row.Token,
		CreatedBy: row.CreatedBy,
		Slots:     row.Slots,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

// ConsumeSlot takes one slot in a single conditional decrement.
func (repo *registrationTokenRepository) ConsumeSlot(ctx context.Context, token string, now time.Time) (bool, error) {
	result := conn(ctx, repo.db).
		Model(&model.RegistrationTokenModel{}).
		Where("token = ? AND slots > 0 AND (expires_at IS NULL OR expires_at >= ?)", token, now).
		UpdateColumn("slots", gorm.Expr("slots - 1"))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume registration token")
	}

	return result.RowsAffected == 1, nil
}

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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// usernameRepository arbitrates reservations with conditional statements so
// concurrent sessions never both believe they hold the same name.
type usernameRepository struct {
	db *gorm.DB
}

// NewUsernameRepository is the constructor for usernameRepository.
func NewUsernameRepository(db *gorm.DB) repository.UsernameRepository {
	return &usernameRepository{db: db}
}

// FindByUsername reads from the primary: it follows a lost insert race and
// must see the winning row.
func (repo *usernameRepository) FindByUsername(ctx context.Context, username string) (*entity.UsernameReservation, error) {
	var row model.UsernameModel

	err := conn(ctx, repo.db).Clauses(dbresolver.Write).Where("username = ?", username).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUsernameNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find username reservation")
	}

	return toUsernameDomain(&row), nil
}

// CreatePending inserts the row unless the username is already taken by any
// reservation, pending or enrolled.
func (repo *usernameRepository) CreatePending(ctx context.Context, reservation *entity.UsernameReservation) (bool, error) {
	row := fromUsernameDomain(reservation)
	row.Status = string(entity.UsernameStatusPending)

	result := conn(ctx, repo.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, nil
		}
		if isCheckConstraintViolation(result.Error) {
			return false, domainerrors.ErrInvalidUsername.WrapMessage("rejected reservation status")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create username reservation")
	}

	return result.RowsAffected == 1, nil
}

// ClaimPending refreshes the row for its current owner or hands a stale row to
// a new owner, in one statement.
func (repo *usernameRepository) ClaimPending(ctx context.Context, input repository.ClaimPendingInput) (bool, error) {
	tokens := nonEmpty(input.ResumeTokens)
	if len(tokens) == 0 {
		// IN () is invalid SQL; an impossible owner keeps the stale branch usable.
		tokens = []string{""}
	}

	result := conn(ctx, repo.db).
		Model(&model.UsernameModel{}).
		Where("username = ? AND status = ?", input.Username, string(entity.UsernameStatusPending)).
		Where("(owner IN ? OR COALESCE(updated_at, created_at) <= ?)", tokens, input.StaleBefore).
		Updates(map[string]any{
			"owner":      input.Owner,
			"updated_at": input.Now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim username reservation")
	}

	return result.RowsAffected == 1, nil
}

// MarkEnrolled promotes a pending row held by one of owners.
func (repo *usernameRepository) MarkEnrolled(ctx context.Context, username string, owners []string, now time.Time) (bool, error) {
	owners = nonEmpty(owners)
	if len(owners) == 0 {
		return false, nil
	}

	result := conn(ctx, repo.db).
		Model(&model.UsernameModel{}).
		Where("username = ? AND status = ? AND owner IN ?", username, string(entity.UsernameStatusPending), owners).
		Updates(map[string]any{
			"status":     string(entity.UsernameStatusEnrolled),
			"updated_at": now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to enroll username")
	}

	return result.RowsAffected == 1, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}

// --- Mapper Functions ---

func toUsernameDomain(data *model.UsernameModel) *entity.UsernameReservation {
	if data == nil {
		return nil
	}

	return &entity.UsernameReservation{
		Username:  data.Username,
		Status:    entity.UsernameStatus(data.Status),
		Owner:     data.Owner,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUsernameDomain(data *entity.UsernameReservation) *model.UsernameModel {
	if data == nil {
		return nil
	}

	return &model.UsernameModel{
		Username:  data.Username,
		Status:    string(data.Status),
		Owner:     data.Owner,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type acceptedTermsRepository struct {
	db *gorm.DB
}

// NewAcceptedTermsRepository is the constructor for acceptedTermsRepository.
func NewAcceptedTermsRepository(db *gorm.DB) repository.AcceptedTermsRepository {
	return &acceptedTermsRepository{db: db}
}

// CreateAcceptedTerms inserts acceptance rows, skipping versions already on file.
func (repo *acceptedTermsRepository) CreateAcceptedTerms(ctx context.Context, records []*entity.AcceptedTerms) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*model.AcceptedTermsModel, 0, len(records))
	for _, r := range records {
		rows = append(rows, &model.AcceptedTermsModel{
			Policy:     r.Policy,
			UserID:     r.UserID,
			Version:    r.Version,
			AcceptedAt: r.AcceptedAt,
		})
	}

	err := conn(ctx, repo.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record accepted terms")
	}

	return nil
}

func (repo *acceptedTermsRepository) FindAcceptedVersions(ctx context.Context, userID, policy string) ([]string, error) {
	var versions []string

	err := conn(ctx, repo.db).
		Model(&model.AcceptedTermsModel{}).
		Where("user_id = ? AND policy = ?", userID, policy).
		Pluck("version", &versions).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find accepted terms")
	}

	return versions, nil
}

package postgres

import (
	"context"

	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type badWordRepository struct {
	db *gorm.DB
}

// NewBadWordRepository is the constructor for badWordRepository.
func NewBadWordRepository(db *gorm.DB) repository.BadWordRepository {
	return &badWordRepository{db: db}
}

func (repo *badWordRepository) ListBadWords(ctx context.Context) ([]string, error) {
	var words []string

	if err := conn(ctx, repo.db).Model(&model.BadWordModel{}).Order("word").Pluck("word", &words).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list bad words")
	}

	return words, nil
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"uiagate/internal/domain/entity"
)

// AcceptedTermsRepository stores evidence of policy acceptance.
type AcceptedTermsRepository interface {
	// CreateAcceptedTerms appends acceptance records. Re-accepting a version
	// already on file is not an error.
	CreateAcceptedTerms(ctx context.Context, records []*entity.AcceptedTerms) error

	// FindAcceptedVersions returns every version of policy the user has accepted.
	FindAcceptedVersions(ctx context.Context, userID, policy string) ([]string, error)
}

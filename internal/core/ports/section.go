package ports

import (
	"context"

	"github.com/goer/asana-clone/internal/core/domain"
)

type SectionRepository interface {
	Create(ctx context.Context, in domain.CreateSectionInput) (domain.Section, error)
	GetByID(ctx context.Context, id uint64) (domain.Section, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Section, error)
	Update(ctx context.Context, id uint64, in domain.UpdateSectionInput) (domain.Section, error)
	// Delete removes the section and detaches its tasks; the tasks stay in
	// the project with no section.
	Delete(ctx context.Context, id uint64) error
}

type SectionService interface {
	Create(ctx context.Context, p domain.Principal, in domain.CreateSectionInput) (domain.Section, error)
	ListByProject(ctx context.Context, p domain.Principal, projectID uint64) ([]domain.Section, error)
	Update(ctx context.Context, p domain.Principal, id uint64, in domain.UpdateSectionInput) (domain.Section, error)
	Delete(ctx context.Context, p domain.Principal, id uint64) error
}

package usecase

import (
	"context"
	"go-mentorship-backend/internal/domain"
)

type catalogUsecase struct {
	mentorRepo domain.MentorRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(mentorRepo domain.MentorRepository) domain.CatalogUsecase {
	return &catalogUsecase{mentorRepo: mentorRepo}
}

// ListAvailableMentors returns the catalog in source row order, keeping
// only mentors with available capacity. Capacity is derived per row; it
// is never stored and never cached between requests.
func (uc *catalogUsecase) ListAvailableMentors(ctx context.Context) ([]domain.MentorRecord, error) {
	mentors, err := uc.mentorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]domain.MentorRecord, 0, len(mentors))
	for _, m := range mentors {
		if m.AvailableCapacity() > 0 {
			available = append(available, m)
		}
	}
	return available, nil
}

package usecase

import (
	"context"
	"sync"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/logger"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type selectionUsecase struct {
	mentorRepo    domain.MentorRepository
	selectionRepo domain.SelectionRepository
	notifier      domain.MatchNotifier
	validate      *validator.Validate

	// mu serializes the read-check-write section (steps 2-6) so two
	// concurrent submissions cannot both pass the capacity check before
	// either commits. Single-writer within this process; no mentor
	// capacity is ever cached in memory, every request re-reads the store.
	mu sync.Mutex
}

// NewSelectionUsecase creates a new selection workflow usecase
func NewSelectionUsecase(
	mentorRepo domain.MentorRepository,
	selectionRepo domain.SelectionRepository,
	notifier domain.MatchNotifier,
	validate *validator.Validate,
) domain.SelectionUsecase {
	return &selectionUsecase{
		mentorRepo:    mentorRepo,
		selectionRepo: selectionRepo,
		notifier:      notifier,
		validate:      validate,
	}
}

// SubmitSelection runs the selection pipeline in strict order. Each
// step's failure short-circuits the rest; there are no retries, a failed
// request must be resubmitted by the requester.
func (uc *selectionUsecase) SubmitSelection(ctx context.Context, key domain.MentorKey, requester *domain.RequesterProfile) (*domain.Selection, error) {
	// 1. Re-validate the profile server-side. The client validates too,
	// but only for UX; nothing submitted is trusted here.
	if err := uc.validate.Struct(requester); err != nil {
		return nil, &domain.ValidationError{Messages: validation.FormatValidationErrors(err)}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 2. One accepted request per requester, ever. Email or phone alone
	// is enough to match a prior row.
	prior, err := uc.selectionRepo.FindByEmailOrPhone(ctx, requester.Email, requester.Phone)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		return nil, &domain.DuplicateRequestError{
			PriorDate:   prior.Timestamp,
			PriorMentor: prior.MentorFullName(),
		}
	}

	// 3. Resolve the mentor against a fresh read.
	mentor, err := uc.mentorRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	// 4. The catalog the requester saw may be stale relative to other
	// selections; recompute capacity from the fresh row.
	if mentor.AvailableCapacity() <= 0 {
		return nil, domain.ErrCapacityExhausted
	}

	// 5. Commit the decrement: blind overwrite of the advisee counter.
	if err := uc.mentorRepo.UpdateAdvisees(ctx, mentor, mentor.CurrentAdvisees+1); err != nil {
		return nil, err
	}

	// 6. Append the audit row.
	sel := &domain.Selection{
		Timestamp:       time.Now().Format(domain.TimestampLayout),
		Name:            requester.Name,
		Surname:         requester.Surname,
		YearInProgram:   requester.YearInProgram,
		Program:         requester.Program,
		Email:           requester.Email,
		Phone:           requester.Phone,
		LinkedinURL:     requester.LinkedinURL,
		MentorFirstName: mentor.FirstName,
		MentorLastName:  mentor.LastName,
	}
	if err := uc.selectionRepo.Append(ctx, sel); err != nil {
		return nil, err
	}

	// 7. Notify both parties. Advisory only: the response does not wait
	// for it and a delivery failure never rolls back steps 5-6.
	uc.dispatchNotification(mentor, sel)

	return sel, nil
}

// dispatchNotification fires the match notification on its own goroutine
// with an independent log-only failure path.
func (uc *selectionUsecase) dispatchNotification(mentor *domain.MentorRecord, sel *domain.Selection) {
	if uc.notifier == nil || !uc.notifier.IsConfigured() {
		logger.Log.Warn("notifier not configured, skipping match notification",
			"mentor", mentor.FullName())
		return
	}

	m := *mentor
	s := *sel
	go func() {
		if err := uc.notifier.SendMatchNotification(&m, &s); err != nil {
			logger.Log.Error("failed to send match notification",
				"error", err,
				"mentor", m.FullName(),
				"requester_email", s.Email)
		}
	}()
}

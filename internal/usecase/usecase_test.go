package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/internal/usecase"
	"go-mentorship-backend/pkg/logger"
	"go-mentorship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories
type MockMentorRepo struct {
	mock.Mock
}

func (m *MockMentorRepo) GetAll(ctx context.Context) ([]domain.MentorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MentorRecord), args.Error(1)
}

func (m *MockMentorRepo) GetByKey(ctx context.Context, key domain.MentorKey) (*domain.MentorRecord, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MentorRecord), args.Error(1)
}

func (m *MockMentorRepo) UpdateAdvisees(ctx context.Context, mentor *domain.MentorRecord, count int) error {
	return m.Called(ctx, mentor, count).Error(0)
}

type MockSelectionRepo struct {
	mock.Mock
}

func (m *MockSelectionRepo) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Selection, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Selection), args.Error(1)
}

func (m *MockSelectionRepo) Append(ctx context.Context, sel *domain.Selection) error {
	return m.Called(ctx, sel).Error(0)
}

// MockNotifier signals on sent so tests can wait for the fire-and-forget
// goroutine without sleeping.
type MockNotifier struct {
	mock.Mock
	sent chan struct{}
}

func (m *MockNotifier) SendMatchNotification(mentor *domain.MentorRecord, sel *domain.Selection) error {
	args := m.Called(mentor, sel)
	if m.sent != nil {
		m.sent <- struct{}{}
	}
	return args.Error(0)
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validRequester() *domain.RequesterProfile {
	return &domain.RequesterProfile{
		Name:          "Juan",
		Surname:       "Pérez",
		YearInProgram: "4",
		Program:       "Ing. Informática",
		Email:         "x@y.com",
		Phone:         "111",
		Sex:           "Varón",
	}
}

func anaGomez() *domain.MentorRecord {
	return &domain.MentorRecord{
		RowNumber:       2,
		FirstName:       "Ana",
		LastName:        "Gómez",
		Email:           "ana@example.com",
		MaxCapacity:     2,
		CurrentAdvisees: 0,
	}
}

func waitForNotification(t *testing.T, sent chan struct{}) {
	t.Helper()
	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestListAvailableMentors(t *testing.T) {
	mockRepo := new(MockMentorRepo)
	uc := usecase.NewCatalogUsecase(mockRepo)

	t.Run("Should filter out mentors without available capacity and keep source order", func(t *testing.T) {
		mockRepo.On("GetAll", mock.Anything).Return([]domain.MentorRecord{
			{FirstName: "Ana", LastName: "Gómez", MaxCapacity: 2, CurrentAdvisees: 0},
			{FirstName: "Bruno", LastName: "Díaz", MaxCapacity: 1, CurrentAdvisees: 1},
			{FirstName: "Carla", LastName: "Ruiz", MaxCapacity: 3, CurrentAdvisees: 5},
			{FirstName: "Diego", LastName: "Sosa", MaxCapacity: 4, CurrentAdvisees: 3},
		}, nil).Once()

		mentors, err := uc.ListAvailableMentors(context.Background())
		assert.NoError(t, err)
		assert.Len(t, mentors, 2)
		assert.Equal(t, "Ana", mentors[0].FirstName)
		assert.Equal(t, "Diego", mentors[1].FirstName)
		for _, m := range mentors {
			assert.Greater(t, m.AvailableCapacity(), 0)
		}
	})

	t.Run("Should propagate record store failure", func(t *testing.T) {
		mockRepo.On("GetAll", mock.Anything).Return(nil, domain.ErrDataSourceUnavailable).Once()

		mentors, err := uc.ListAvailableMentors(context.Background())
		assert.Nil(t, mentors)
		assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	})
}

func TestAvailableCapacityIsFlooredAtZero(t *testing.T) {
	m := &domain.MentorRecord{MaxCapacity: 2, CurrentAdvisees: 5}
	assert.Equal(t, 0, m.AvailableCapacity())
}

func TestSubmitSelectionValidation(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, nil, newValidate())

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		requester := validRequester()
		requester.Email = ""
		requester.Sex = ""

		_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}, requester)

		var valErr *domain.ValidationError
		assert.ErrorAs(t, err, &valErr)
		assert.Len(t, valErr.Messages, 2)
		// Messages carry the form labels, not struct field names
		assert.Contains(t, valErr.Messages[0], "Correo")
		assert.Contains(t, valErr.Messages[1], "Sexo")

		// Nothing downstream runs, nothing is mutated
		selectionRepo.AssertNotCalled(t, "FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything)
		mentorRepo.AssertNotCalled(t, "UpdateAdvisees", mock.Anything, mock.Anything, mock.Anything)
		selectionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Should accept a profile without LinkedIn", func(t *testing.T) {
		requester := validRequester()
		requester.LinkedinURL = ""

		selectionRepo.On("FindByEmailOrPhone", mock.Anything, "x@y.com", "111").Return(nil, nil).Once()
		mentorRepo.On("GetByKey", mock.Anything, mock.Anything).Return(nil, domain.ErrMentorNotFound).Once()

		_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Nadie", LastName: "Nunca"}, requester)
		assert.ErrorIs(t, err, domain.ErrMentorNotFound)
	})
}

func TestSubmitSelectionDuplicate(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, nil, newValidate())

	prior := &domain.Selection{
		Timestamp:       "01/06/2026 10:30:00",
		Email:           "x@y.com",
		MentorFirstName: "Ana",
		MentorLastName:  "Gómez",
	}
	selectionRepo.On("FindByEmailOrPhone", mock.Anything, "x@y.com", "111").Return(prior, nil).Once()

	_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Bruno", LastName: "Díaz"}, validRequester())

	var dupErr *domain.DuplicateRequestError
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "01/06/2026 10:30:00", dupErr.PriorDate)
	assert.Equal(t, "Ana Gómez", dupErr.PriorMentor)

	// The duplicate short-circuits before any read or write of mentors
	mentorRepo.AssertNotCalled(t, "GetByKey", mock.Anything, mock.Anything)
	mentorRepo.AssertNotCalled(t, "UpdateAdvisees", mock.Anything, mock.Anything, mock.Anything)
	selectionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitSelectionMentorNotFound(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, nil, newValidate())

	selectionRepo.On("FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	mentorRepo.On("GetByKey", mock.Anything, domain.MentorKey{FirstName: "Nadie", LastName: "Nunca"}).Return(nil, domain.ErrMentorNotFound).Once()

	_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Nadie", LastName: "Nunca"}, validRequester())

	assert.ErrorIs(t, err, domain.ErrMentorNotFound)
	mentorRepo.AssertNotCalled(t, "UpdateAdvisees", mock.Anything, mock.Anything, mock.Anything)
	selectionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitSelectionCapacityExhausted(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, nil, newValidate())

	full := anaGomez()
	full.CurrentAdvisees = full.MaxCapacity

	selectionRepo.On("FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	mentorRepo.On("GetByKey", mock.Anything, mock.Anything).Return(full, nil).Once()

	_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}, validRequester())

	assert.ErrorIs(t, err, domain.ErrCapacityExhausted)
	mentorRepo.AssertNotCalled(t, "UpdateAdvisees", mock.Anything, mock.Anything, mock.Anything)
	selectionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSubmitSelectionSuccess(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	notifier := &MockNotifier{sent: make(chan struct{}, 1)}
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, notifier, newValidate())

	mentor := anaGomez()

	selectionRepo.On("FindByEmailOrPhone", mock.Anything, "x@y.com", "111").Return(nil, nil).Once()
	mentorRepo.On("GetByKey", mock.Anything, domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}).Return(mentor, nil).Once()
	mentorRepo.On("UpdateAdvisees", mock.Anything, mentor, 1).Return(nil).Once()

	var appended *domain.Selection
	selectionRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.Selection")).Return(nil).Once().Run(func(args mock.Arguments) {
		appended = args.Get(1).(*domain.Selection)
	})

	notifier.On("IsConfigured").Return(true)
	notifier.On("SendMatchNotification", mock.Anything, mock.Anything).Return(nil).Once()

	sel, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}, validRequester())

	assert.NoError(t, err)
	assert.NotNil(t, sel)

	// Exactly one decrement by exactly one, exactly one audit row
	mentorRepo.AssertNumberOfCalls(t, "UpdateAdvisees", 1)
	selectionRepo.AssertNumberOfCalls(t, "Append", 1)

	// The audit row snapshots the requester and the mentor's natural key
	assert.NotNil(t, appended)
	assert.Equal(t, "Ana", appended.MentorFirstName)
	assert.Equal(t, "Gómez", appended.MentorLastName)
	assert.Equal(t, "Juan", appended.Name)
	assert.Equal(t, "x@y.com", appended.Email)
	assert.NotEmpty(t, appended.Timestamp)

	waitForNotification(t, notifier.sent)
	notifier.AssertCalled(t, "SendMatchNotification", mock.Anything, mock.Anything)
}

func TestSubmitSelectionNotificationFailureDoesNotFailRequest(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	notifier := &MockNotifier{sent: make(chan struct{}, 1)}
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, notifier, newValidate())

	selectionRepo.On("FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	mentorRepo.On("GetByKey", mock.Anything, mock.Anything).Return(anaGomez(), nil).Once()
	mentorRepo.On("UpdateAdvisees", mock.Anything, mock.Anything, 1).Return(nil).Once()
	selectionRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	notifier.On("IsConfigured").Return(true)
	notifier.On("SendMatchNotification", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	sel, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}, validRequester())

	assert.NoError(t, err)
	assert.NotNil(t, sel)
	waitForNotification(t, notifier.sent)
}

func TestSubmitSelectionCommitFailureShortCircuits(t *testing.T) {
	mentorRepo := new(MockMentorRepo)
	selectionRepo := new(MockSelectionRepo)
	uc := usecase.NewSelectionUsecase(mentorRepo, selectionRepo, nil, newValidate())

	selectionRepo.On("FindByEmailOrPhone", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	mentorRepo.On("GetByKey", mock.Anything, mock.Anything).Return(anaGomez(), nil).Once()
	mentorRepo.On("UpdateAdvisees", mock.Anything, mock.Anything, 1).Return(domain.ErrDataSourceUnavailable).Once()

	_, err := uc.SubmitSelection(context.Background(), domain.MentorKey{FirstName: "Ana", LastName: "Gómez"}, validRequester())

	assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	selectionRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

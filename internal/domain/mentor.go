package domain

import "context"

// MentorKey is the natural key used to match a mentor across the catalog
// and the selections log. There is no surrogate ID column in the record
// store; the first row matching the pair wins.
type MentorKey struct {
	FirstName string
	LastName  string
}

// MentorRecord is one row of the Tutores table. The DNI column is dropped
// during row mapping and never exists on this struct, so it cannot leave
// the repository boundary.
type MentorRecord struct {
	// RowNumber is the absolute sheet row (header is row 1, data starts
	// at row 2). Needed to address the advisee-counter cell on writes.
	RowNumber int

	FirstName        string
	LastName         string
	Sex              string
	Age              string
	GraduationYear   string
	Program          string
	Phone            string
	Email            string
	Location         string
	EmploymentStatus string
	Employer         string
	Title            string
	LinkedinURL      string
	PhotoURL         string

	// CurrentAdvisees only increases, and only through the selection
	// workflow. MaxCapacity is set by an administrator out-of-band.
	CurrentAdvisees int
	MaxCapacity     int
}

// AvailableCapacity is always derived, never stored.
func (m *MentorRecord) AvailableCapacity() int {
	avail := m.MaxCapacity - m.CurrentAdvisees
	if avail < 0 {
		return 0
	}
	return avail
}

// FullName renders the natural key for display ("Ana Gómez").
func (m *MentorRecord) FullName() string {
	return m.FirstName + " " + m.LastName
}

// MentorRepository defines data access for the Tutores table
type MentorRepository interface {
	// GetAll returns every mentor row in source order, capacity included.
	GetAll(ctx context.Context) ([]MentorRecord, error)
	// GetByKey resolves a mentor by exact (FirstName, LastName) match
	// against a fresh read. Returns ErrMentorNotFound when absent.
	GetByKey(ctx context.Context, key MentorKey) (*MentorRecord, error)
	// UpdateAdvisees overwrites the advisee-counter cell of the mentor's
	// row. This is a blind single-cell write per the record store contract.
	UpdateAdvisees(ctx context.Context, mentor *MentorRecord, count int) error
}

// CatalogUsecase defines the mentor catalog business logic
type CatalogUsecase interface {
	// ListAvailableMentors returns mentors with available capacity,
	// in source row order.
	ListAvailableMentors(ctx context.Context) ([]MentorRecord, error)
}

package domain

import "context"

// TimestampLayout is the format selections are stamped with in the log
// sheet. Day-first, matching what the spreadsheet has always displayed.
const TimestampLayout = "02/01/2006 15:04:05"

// RequesterProfile is the in-flight form submission. It is never persisted
// standalone: it either becomes a Selection or is discarded.
type RequesterProfile struct {
	Name          string `validate:"required,valid_name"`
	Surname       string `validate:"required,valid_name"`
	YearInProgram string `validate:"required"`
	Program       string `validate:"required"`
	Email         string `validate:"required,email"`
	Phone         string `validate:"required,valid_phone"`
	Sex           string `validate:"required"`
	LinkedinURL   string // optional
}

// Selection is one row of the append-only Selecciones audit log.
// Rows are created once per successful selection and never updated
// or deleted by this system.
type Selection struct {
	Timestamp     string
	Name          string
	Surname       string
	YearInProgram string
	Program       string
	Email         string
	Phone         string
	LinkedinURL   string

	MentorFirstName string
	MentorLastName  string
}

// MentorFullName renders the selected mentor's natural key for display.
func (s *Selection) MentorFullName() string {
	return s.MentorFirstName + " " + s.MentorLastName
}

// SelectionRepository defines data access for the Selecciones log
type SelectionRepository interface {
	// FindByEmailOrPhone scans the log for a prior request whose email
	// matches case-insensitively OR whose phone matches exactly. Returns
	// (nil, nil) when no prior request exists.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*Selection, error)
	// Append adds one row to the end of the log.
	Append(ctx context.Context, sel *Selection) error
}

// MatchNotifier sends the best-effort match notification. Delivery is
// advisory: it runs after the commit and is never part of the result.
type MatchNotifier interface {
	SendMatchNotification(mentor *MentorRecord, sel *Selection) error
	IsConfigured() bool
}

// SelectionUsecase defines the selection workflow
type SelectionUsecase interface {
	// SubmitSelection runs the read-check-write pipeline: validate the
	// requester, reject duplicates, resolve the mentor, check capacity,
	// commit the decrement, append the audit row, then notify.
	SubmitSelection(ctx context.Context, key MentorKey, requester *RequesterProfile) (*Selection, error)
}

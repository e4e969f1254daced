package sheets

import (
	"context"
	"fmt"
	"strings"

	"go-mentorship-backend/internal/domain"
)

// Fixed column order of the Selecciones log:
//
//	A Fecha | B Nombre | C Apellido | D Año en la carrera | E Carrera |
//	F Correo | G Celular | H Linkedin | I Tutor nombre | J Tutor apellido
const (
	selFecha          = 0
	selNombre         = 1
	selApellido       = 2
	selAnioCarrera    = 3
	selCarrera        = 4
	selCorreo         = 5
	selCelular        = 6
	selLinkedin       = 7
	selTutorNombre    = 8
	selTutorApellido  = 9
	selectionsColumns = 10
)

const selectionsFirstDataRow = 2

type selectionRepo struct {
	store     domain.RecordStore
	sheetName string
}

// NewSelectionRepository creates a selections-log repository over the
// given record store. sheetName is the tab holding the Selecciones log.
func NewSelectionRepository(store domain.RecordStore, sheetName string) domain.SelectionRepository {
	return &selectionRepo{store: store, sheetName: sheetName}
}

func (r *selectionRepo) readRange() string {
	return fmt.Sprintf("%s!A%d:J", r.sheetName, selectionsFirstDataRow)
}

func (r *selectionRepo) appendRange() string {
	// Appending against A1 lets the store find the end of the table.
	return fmt.Sprintf("%s!A1", r.sheetName)
}

// FindByEmailOrPhone scans the whole log for a prior request. Email
// matches case-insensitively, phone matches exactly; either one alone is
// enough. Blank stored values never match.
func (r *selectionRepo) FindByEmailOrPhone(ctx context.Context, email, phone string) (*domain.Selection, error) {
	rows, err := r.store.ReadRange(ctx, r.readRange())
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	for _, row := range rows {
		priorEmail := cellAt(row, selCorreo)
		priorPhone := cellAt(row, selCelular)

		if (priorEmail != "" && email != "" && strings.EqualFold(priorEmail, email)) ||
			(priorPhone != "" && phone != "" && priorPhone == phone) {
			sel := mapSelectionRow(row)
			return &sel, nil
		}
	}
	return nil, nil
}

// Append adds one row to the end of the log.
func (r *selectionRepo) Append(ctx context.Context, sel *domain.Selection) error {
	row := []interface{}{
		sel.Timestamp,
		sel.Name,
		sel.Surname,
		sel.YearInProgram,
		sel.Program,
		sel.Email,
		sel.Phone,
		sel.LinkedinURL,
		sel.MentorFirstName,
		sel.MentorLastName,
	}
	return r.store.AppendRow(ctx, r.appendRange(), row)
}

func mapSelectionRow(row []string) domain.Selection {
	return domain.Selection{
		Timestamp:       cellAt(row, selFecha),
		Name:            cellAt(row, selNombre),
		Surname:         cellAt(row, selApellido),
		YearInProgram:   cellAt(row, selAnioCarrera),
		Program:         cellAt(row, selCarrera),
		Email:           cellAt(row, selCorreo),
		Phone:           cellAt(row, selCelular),
		LinkedinURL:     cellAt(row, selLinkedin),
		MentorFirstName: cellAt(row, selTutorNombre),
		MentorLastName:  cellAt(row, selTutorApellido),
	}
}

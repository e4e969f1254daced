package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-mentorship-backend/internal/domain"
)

// Fixed column order of the Tutores sheet, agreed out-of-band with the
// administrators. The header row itself is never read at runtime.
//
//	A Nombre | B Apellido | C DNI | D Sexo | E Edad | F Graduación |
//	G Carrera | H Celular | I Mail | J Lugar | K Situación laboral |
//	L Empresa | M Cargo | N Linkedin | O Cantidad de asesorados |
//	P Cupo máximo | Q Foto
const (
	colNombre           = 0
	colApellido         = 1
	colDNI              = 2 // deliberately never mapped: must not leave this package
	colSexo             = 3
	colEdad             = 4
	colGraduacion       = 5
	colCarrera          = 6
	colCelular          = 7
	colMail             = 8
	colLugar            = 9
	colSituacionLaboral = 10
	colEmpresa          = 11
	colCargo            = 12
	colLinkedin         = 13
	colAsesorados       = 14
	colCupoMaximo       = 15
	colFoto             = 16
)

const (
	// Data starts at row 2; row 1 is the header.
	mentorsFirstDataRow = 2
	// Column holding the mutable advisee counter (Cantidad de asesorados).
	adviseesColumn = "O"
)

type mentorRepo struct {
	store     domain.RecordStore
	sheetName string
}

// NewMentorRepository creates a mentor repository over the given record
// store. sheetName is the tab holding the Tutores table.
func NewMentorRepository(store domain.RecordStore, sheetName string) domain.MentorRepository {
	return &mentorRepo{store: store, sheetName: sheetName}
}

func (r *mentorRepo) readRange() string {
	return fmt.Sprintf("%s!A%d:Q", r.sheetName, mentorsFirstDataRow)
}

// GetAll returns every mentor row in source order.
func (r *mentorRepo) GetAll(ctx context.Context) ([]domain.MentorRecord, error) {
	rows, err := r.store.ReadRange(ctx, r.readRange())
	if err != nil {
		return nil, err
	}

	mentors := make([]domain.MentorRecord, 0, len(rows))
	for i, row := range rows {
		mentors = append(mentors, mapMentorRow(row, mentorsFirstDataRow+i))
	}
	return mentors, nil
}

// GetByKey resolves a mentor by exact (Nombre, Apellido) pair against a
// fresh read. First matching row wins when two mentors share a name.
func (r *mentorRepo) GetByKey(ctx context.Context, key domain.MentorKey) (*domain.MentorRecord, error) {
	mentors, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range mentors {
		if mentors[i].FirstName == key.FirstName && mentors[i].LastName == key.LastName {
			return &mentors[i], nil
		}
	}
	return nil, domain.ErrMentorNotFound
}

// UpdateAdvisees overwrites the advisee-counter cell of the mentor's row.
func (r *mentorRepo) UpdateAdvisees(ctx context.Context, mentor *domain.MentorRecord, count int) error {
	cellAddr := fmt.Sprintf("%s!%s%d", r.sheetName, adviseesColumn, mentor.RowNumber)
	return r.store.UpdateCell(ctx, cellAddr, count)
}

// mapMentorRow builds a MentorRecord from raw cells. The DNI column is
// skipped here: the record type has no field for it.
func mapMentorRow(row []string, rowNumber int) domain.MentorRecord {
	return domain.MentorRecord{
		RowNumber:        rowNumber,
		FirstName:        cellAt(row, colNombre),
		LastName:         cellAt(row, colApellido),
		Sex:              cellAt(row, colSexo),
		Age:              cellAt(row, colEdad),
		GraduationYear:   cellAt(row, colGraduacion),
		Program:          cellAt(row, colCarrera),
		Phone:            cellAt(row, colCelular),
		Email:            cellAt(row, colMail),
		Location:         cellAt(row, colLugar),
		EmploymentStatus: cellAt(row, colSituacionLaboral),
		Employer:         cellAt(row, colEmpresa),
		Title:            cellAt(row, colCargo),
		LinkedinURL:      cellAt(row, colLinkedin),
		PhotoURL:         cellAt(row, colFoto),
		CurrentAdvisees:  intAt(row, colAsesorados),
		MaxCapacity:      intAt(row, colCupoMaximo),
	}
}

// cellAt tolerates short rows: trailing empty cells are absent from the
// values the store returns.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// intAt parses a numeric cell, treating blanks and junk as zero the way
// the sheet's own formulas do.
func intAt(row []string, idx int) int {
	n, err := strconv.Atoi(cellAt(row, idx))
	if err != nil {
		return 0
	}
	return n
}

package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"go-mentorship-backend/internal/domain"
)

// Store implements domain.RecordStore on top of the Google Sheets API.
type Store struct {
	srv           *gsheets.Service
	spreadsheetID string
}

// NewStore builds the Sheets client from a service-account credentials
// file and verifies the spreadsheet is reachable before returning.
func NewStore(ctx context.Context, credentialsFile, spreadsheetID string) (*Store, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	// Equivalent of a connection ping: fetch spreadsheet metadata only.
	if _, err := srv.Spreadsheets.Get(spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("spreadsheet %s not reachable: %w", spreadsheetID, err)
	}

	log.Println("Record store connection established successfully")
	return &Store{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// ReadRange returns the raw cell values of an A1-notation range. Cells
// arrive as formatted strings; trailing empty cells may be missing from
// a row, which the row mappers tolerate.
func (s *Store) ReadRange(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDataSourceUnavailable, readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cellValue := range raw {
			row[i] = fmt.Sprint(cellValue)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateCell blindly overwrites one cell. There is no compare-and-swap in
// the record store contract; callers serialize writes themselves.
func (s *Store) UpdateCell(ctx context.Context, cell string, value interface{}) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, cell, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrDataSourceUnavailable, cell, err)
	}
	return nil
}

// AppendRow adds one row after the last row of the given range.
func (s *Store) AppendRow(ctx context.Context, appendRange string, row []interface{}) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: appending to %s: %v", domain.ErrDataSourceUnavailable, appendRange, err)
	}
	return nil
}

package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/sheets/v4"
)

// Value input options understood by the Sheets values API.
const (
	inputRaw       = "RAW"
	insertRows     = "INSERT_ROWS"
	headerColumns  = "A1:D1"
	appendColumns  = "A:D"
	titleFieldMask = "sheets.properties.title"
)

// rowStore is the slice of the Sheets API the appender needs.
type rowStore interface {
	Header(ctx context.Context) ([]string, error)
	SetHeader(ctx context.Context, header []string) error
	Append(ctx context.Context, row []string) error
}

// apiStore talks to the first worksheet of one spreadsheet.
type apiStore struct {
	svc     *sheets.Service
	sheetID string

	mu    sync.Mutex
	title string
}

func newAPIStore(svc *sheets.Service, sheetID string) *apiStore {
	return &apiStore{svc: svc, sheetID: sheetID}
}

// firstSheet resolves the title of the first worksheet, caching it after
// the first successful lookup.
func (s *apiStore) firstSheet(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.title != "" {
		return s.title, nil
	}

	doc, err := s.svc.Spreadsheets.Get(s.sheetID).Fields(titleFieldMask).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("load spreadsheet info: %w", err)
	}
	if len(doc.Sheets) == 0 || doc.Sheets[0].Properties == nil {
		return "", fmt.Errorf("spreadsheet %s has no worksheets", s.sheetID)
	}
	s.title = doc.Sheets[0].Properties.Title
	return s.title, nil
}

func (s *apiStore) rangeOf(ctx context.Context, cells string) (string, error) {
	title, err := s.firstSheet(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(title, "'", "''"), cells), nil
}

func (s *apiStore) Header(ctx context.Context) ([]string, error) {
	rng, err := s.rangeOf(ctx, headerColumns)
	if err != nil {
		return nil, err
	}
	vr, err := s.svc.Spreadsheets.Values.Get(s.sheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(vr.Values) == 0 {
		return nil, nil
	}
	header := make([]string, 0, len(vr.Values[0]))
	for _, v := range vr.Values[0] {
		header = append(header, fmt.Sprint(v))
	}
	return header, nil
}

func (s *apiStore) SetHeader(ctx context.Context, header []string) error {
	rng, err := s.rangeOf(ctx, headerColumns)
	if err != nil {
		return err
	}
	_, err = s.svc.Spreadsheets.Values.Update(s.sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{toCells(header)},
	}).ValueInputOption(inputRaw).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

func (s *apiStore) Append(ctx context.Context, row []string) error {
	rng, err := s.rangeOf(ctx, appendColumns)
	if err != nil {
		return err
	}
	_, err = s.svc.Spreadsheets.Values.Append(s.sheetID, rng, &sheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}).ValueInputOption(inputRaw).InsertDataOption(insertRows).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

// Package spreadsheet stores the slide archive in a Google Sheets worksheet
// whose header row names the columns "Date", "Title" and "Embed URL", in any order.
package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"slidearchive/internal/domain"
)

// Worksheet column headers, in append order.
const (
	HeaderDate     = "Date"
	HeaderTitle    = "Title"
	HeaderEmbedURL = "Embed URL"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

var header = []any{HeaderDate, HeaderTitle, HeaderEmbedURL}

// ErrSpreadsheetNotFound is returned when no spreadsheet has the configured name.
var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

// Config addresses the worksheet. SpreadsheetID, when set, skips the lookup by name.
type Config struct {
	SpreadsheetName string
	SpreadsheetID   string
	Worksheet       string
}

// Store implements domain.SlideRepository on a Google Sheets worksheet.
// The spreadsheet is resolved and its header row checked on first use; a
// failed attempt is retried on the next call. Appended rows follow the
// column order of the existing header.
type Store struct {
	cfg    Config
	logger *slog.Logger
	values *sheets.SpreadsheetsValuesService
	files  *drive.FilesService

	mu            sync.Mutex
	spreadsheetID string
	cols          columns
}

var _ domain.SlideRepository = (*Store)(nil)

// New builds the API clients. No request is made until the first Append or FetchAll.
func New(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*Store, error) {
	if cfg.Worksheet == "" {
		return nil, errors.New("worksheet name is required")
	}
	if cfg.SpreadsheetID == "" && cfg.SpreadsheetName == "" {
		return nil, errors.New("spreadsheet name or id is required")
	}
	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	return &Store{
		cfg:    cfg,
		logger: logger,
		values: sheetsSvc.Spreadsheets.Values,
		files:  driveSvc.Files,
	}, nil
}

func (s *Store) Append(ctx context.Context, e *domain.SlideEntry) error {
	id, cols, err := s.conn(ctx)
	if err != nil {
		return err
	}
	row := &sheets.ValueRange{Values: [][]any{cols.row(e)}}
	_, err = s.values.Append(id, s.a1(cols.span()), row).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func (s *Store) FetchAll(ctx context.Context) ([]*domain.SlideEntry, error) {
	id, _, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := s.values.Get(id, s.a1("")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	recs, err := parseRecords(resp.Values)
	if err != nil {
		return nil, err
	}
	for _, bad := range recs.invalid {
		s.logger.WarnContext(ctx, "skipping worksheet row with invalid date",
			"worksheet", s.cfg.Worksheet, "row", bad.Row, "date", bad.Date)
	}

	// Track header edits made since the first call.
	if len(resp.Values) > 0 {
		s.mu.Lock()
		s.cols = recs.cols
		s.mu.Unlock()
	}
	return recs.entries, nil
}

// conn returns the spreadsheet id and header layout, resolving the id and
// reading or writing the header row on first use.
func (s *Store) conn(ctx context.Context) (string, columns, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.spreadsheetID != "" {
		return s.spreadsheetID, s.cols, nil
	}

	id := s.cfg.SpreadsheetID
	if id == "" {
		var err error
		if id, err = s.lookup(ctx); err != nil {
			return "", columns{}, err
		}
	}
	cols, err := s.ensureHeader(ctx, id)
	if err != nil {
		return "", columns{}, err
	}
	s.spreadsheetID, s.cols = id, cols
	return id, cols, nil
}

func (s *Store) lookup(ctx context.Context) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(s.cfg.SpreadsheetName), spreadsheetMimeType)
	list, err := s.files.List().
		Q(q).
		Fields("files(id, name)").
		PageSize(1).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("look up spreadsheet %q: %w", s.cfg.SpreadsheetName, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSpreadsheetNotFound, s.cfg.SpreadsheetName)
	}
	return list.Files[0].Id, nil
}

// ensureHeader returns the layout of an existing header row, or writes the
// canonical header when row 1 is empty.
func (s *Store) ensureHeader(ctx context.Context, id string) (columns, error) {
	resp, err := s.values.Get(id, s.a1("1:1")).Context(ctx).Do()
	if err != nil {
		return columns{}, fmt.Errorf("read header row: %w", err)
	}
	if len(resp.Values) > 0 && !blank(resp.Values[0]) {
		return parseHeader(resp.Values[0])
	}
	_, err = s.values.Update(id, s.a1("A1:C1"), &sheets.ValueRange{Values: [][]any{header}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return columns{}, fmt.Errorf("write header row: %w", err)
	}
	return canonicalColumns, nil
}

// a1 returns an A1 range on the worksheet; an empty cells string means the whole sheet.
func (s *Store) a1(cells string) string {
	name := "'" + strings.ReplaceAll(s.cfg.Worksheet, "'", "''") + "'"
	if cells == "" {
		return name
	}
	return name + "!" + cells
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

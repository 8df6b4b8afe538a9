package spreadsheet

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-sheets/address"
)

type update struct {
	area   string
	values *sheets.ValueRange
}

type stub struct {
	spreadsheet *sheets.Spreadsheet
	values      *sheets.ValueRange
	reply       *sheets.BatchUpdateSpreadsheetResponse
	err         error

	updates  []update
	appends  []update
	batches  []*sheets.BatchUpdateSpreadsheetRequest
	cleared  []string
	requests int
}

func (s *stub) Get(ctx context.Context, spreadsheet string) (*sheets.Spreadsheet, error) {
	s.requests++
	return s.spreadsheet, s.err
}

func (s *stub) GetValues(ctx context.Context, spreadsheet string, area string) (*sheets.ValueRange, error) {
	s.requests++
	return s.values, s.err
}

func (s *stub) UpdateValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error {
	s.requests++
	s.updates = append(s.updates, update{area, values})
	return s.err
}

func (s *stub) AppendValues(ctx context.Context, spreadsheet string, area string, values *sheets.ValueRange) error {
	s.requests++
	s.appends = append(s.appends, update{area, values})
	return s.err
}

func (s *stub) BatchUpdate(ctx context.Context, spreadsheet string, rq *sheets.BatchUpdateSpreadsheetRequest) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	s.requests++
	s.batches = append(s.batches, rq)
	return s.reply, s.err
}

func (s *stub) ClearValues(ctx context.Context, spreadsheet string, ranges []string) error {
	s.requests++
	s.cleared = append(s.cleared, ranges...)
	return s.err
}

var worksheets = sheets.Spreadsheet{
	SpreadsheetId: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	Sheets: []*sheets.Sheet{
		&sheets.Sheet{Properties: &sheets.SheetProperties{SheetId: 0, Title: "ACL"}},
		&sheets.Sheet{Properties: &sheets.SheetProperties{SheetId: 1729, Title: "Log"}},
		&sheets.Sheet{},
	},
}

func TestSheetTitle(t *testing.T) {
	s := NewSpreadsheet(&stub{spreadsheet: &worksheets}, worksheets.SpreadsheetId)

	title, ok, err := s.SheetTitle(context.Background(), 1729)
	if err != nil {
		t.Fatalf("Unexpected error returned from SheetTitle (%v)", err)
	}

	if !ok || title != "Log" {
		t.Errorf("Incorrect sheet title - expected:%v, got:%v (%v)", "Log", title, ok)
	}

	if _, ok, err := s.SheetTitle(context.Background(), 42); err != nil || ok {
		t.Errorf("Expected no title for unknown sheet ID, got %v (%v)", ok, err)
	}
}

func TestSheetID(t *testing.T) {
	s := NewSpreadsheet(&stub{spreadsheet: &worksheets}, worksheets.SpreadsheetId)

	id, ok, err := s.SheetID(context.Background(), "Log")
	if err != nil {
		t.Fatalf("Unexpected error returned from SheetID (%v)", err)
	}

	if !ok || id != 1729 {
		t.Errorf("Incorrect sheet ID - expected:%v, got:%v (%v)", 1729, id, ok)
	}

	if _, ok, err := s.SheetID(context.Background(), "log"); err != nil || ok {
		t.Errorf("Expected no ID for unknown sheet title, got %v (%v)", ok, err)
	}
}

func TestSheetLookupWithNoMetadata(t *testing.T) {
	s := NewSpreadsheet(&stub{}, "xyz")

	if _, ok, err := s.SheetTitle(context.Background(), 0); err != nil || ok {
		t.Errorf("Expected no title for missing spreadsheet metadata, got %v (%v)", ok, err)
	}

	if _, ok, err := s.SheetID(context.Background(), "ACL"); err != nil || ok {
		t.Errorf("Expected no ID for missing spreadsheet metadata, got %v (%v)", ok, err)
	}

	if err := s.FormatBackground(context.Background(), "ACL", "A1", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing spreadsheet metadata, got %v", err)
	}
}

func TestRead(t *testing.T) {
	expected := [][]string{
		{"Card Number", "From", "To"},
		{"6001001", "2020-01-01", ""},
		{"42"},
	}

	service := stub{
		values: &sheets.ValueRange{
			Values: [][]any{
				{"Card Number", "From", "To"},
				{"6001001", "2020-01-01", nil},
				{42},
			},
		},
	}

	rows, err := NewSpreadsheet(&service, "xyz").Read(context.Background(), "ACL!A1:C10")
	if err != nil {
		t.Fatalf("Unexpected error returned from Read (%v)", err)
	}

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect values\n   expected: %v\n   got:      %v", expected, rows)
	}
}

func TestReadWithEmptyRange(t *testing.T) {
	service := stub{values: &sheets.ValueRange{}}

	rows, err := NewSpreadsheet(&service, "xyz").Read(context.Background(), "ACL!A1:C10")
	if err != nil {
		t.Fatalf("Unexpected error returned from Read (%v)", err)
	}

	if rows == nil || len(rows) != 0 {
		t.Errorf("Expected empty slice for empty range, got %#v", rows)
	}
}

func TestWrite(t *testing.T) {
	service := stub{}
	values := [][]string{{"a", "b"}, {"=SUM(A1:A2)", "2"}}

	if err := NewSpreadsheet(&service, "xyz").Write(context.Background(), "ACL!A1:B2", values); err != nil {
		t.Fatalf("Unexpected error returned from Write (%v)", err)
	}

	expected := []update{
		{"ACL!A1:B2", &sheets.ValueRange{
			Range:  "ACL!A1:B2",
			Values: [][]any{{"a", "b"}, {"=SUM(A1:A2)", "2"}},
		}},
	}

	if !reflect.DeepEqual(service.updates, expected) {
		t.Errorf("Incorrect update\n   expected: %+v\n   got:      %+v", expected, service.updates)
	}
}

func TestAppend(t *testing.T) {
	service := stub{}
	values := [][]string{{"2023-04-01", "ok"}}

	if err := NewSpreadsheet(&service, "xyz").Append(context.Background(), "Log!A1:B", values); err != nil {
		t.Fatalf("Unexpected error returned from Append (%v)", err)
	}

	if len(service.updates) != 0 {
		t.Errorf("Append issued an update: %+v", service.updates)
	}

	if len(service.appends) != 1 {
		t.Fatalf("Expected 1 append request, got %v", len(service.appends))
	}

	if a := service.appends[0]; a.area != "Log!A1:B" || !reflect.DeepEqual(a.values.Values, [][]any{{"2023-04-01", "ok"}}) {
		t.Errorf("Incorrect append request %v %v", a.area, a.values.Values)
	}
}

func TestWriteRow(t *testing.T) {
	service := stub{}

	if err := NewSpreadsheet(&service, "xyz").WriteRow(context.Background(), 2, 1, []string{"x", "y", "z"}); err != nil {
		t.Fatalf("Unexpected error returned from WriteRow (%v)", err)
	}

	expected := []update{
		{"A2:C2", &sheets.ValueRange{
			Range:          "A2:C2",
			MajorDimension: "ROWS",
			Values:         [][]any{{"x", "y", "z"}},
		}},
	}

	if !reflect.DeepEqual(service.updates, expected) {
		t.Errorf("Incorrect update\n   expected: %+v\n   got:      %+v", expected, service.updates)
	}
}

func TestWriteColumn(t *testing.T) {
	service := stub{}

	if err := NewSpreadsheet(&service, "xyz").WriteColumn(context.Background(), 2, 1, []string{"x", "y"}); err != nil {
		t.Fatalf("Unexpected error returned from WriteColumn (%v)", err)
	}

	expected := []update{
		{"B1", &sheets.ValueRange{
			Range:          "B1",
			MajorDimension: "COLUMNS",
			Values:         [][]any{{"x"}, {"y"}},
		}},
	}

	if !reflect.DeepEqual(service.updates, expected) {
		t.Errorf("Incorrect update\n   expected: %+v\n   got:      %+v", expected, service.updates)
	}
}

func TestWriteRowWithInvalidArgs(t *testing.T) {
	service := stub{}
	s := NewSpreadsheet(&service, "xyz")

	if err := s.WriteRow(context.Background(), 0, 1, []string{"x"}); !errors.Is(err, address.ErrPreconditionViolation) {
		t.Errorf("Expected ErrPreconditionViolation for row 0, got %v", err)
	}

	if err := s.WriteColumn(context.Background(), 0, 1, []string{"x"}); !errors.Is(err, address.ErrPreconditionViolation) {
		t.Errorf("Expected ErrPreconditionViolation for column 0, got %v", err)
	}

	if err := s.WriteRow(context.Background(), 1, 1, []string{}); !errors.Is(err, address.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty row, got %v", err)
	}

	if service.requests != 0 {
		t.Errorf("Expected no remote calls, got %v", service.requests)
	}
}

func TestRenameSheet(t *testing.T) {
	service := stub{}

	if err := NewSpreadsheet(&service, "xyz").RenameSheet(context.Background(), "Current"); err != nil {
		t.Fatalf("Unexpected error returned from RenameSheet (%v)", err)
	}

	if len(service.batches) != 1 || len(service.batches[0].Requests) != 1 {
		t.Fatalf("Expected a single batch update request, got %+v", service.batches)
	}

	rq := service.batches[0].Requests[0].UpdateSheetProperties
	if rq == nil || rq.Fields != "title" || rq.Properties.Title != "Current" || rq.Properties.SheetId != 0 {
		t.Errorf("Incorrect rename request %+v", rq)
	}
}

func TestRenameWorksheet(t *testing.T) {
	service := stub{spreadsheet: &worksheets}
	s := NewSpreadsheet(&service, "xyz")

	if err := s.RenameWorksheet(context.Background(), "Log", "Audit"); err != nil {
		t.Fatalf("Unexpected error returned from RenameWorksheet (%v)", err)
	}

	if rq := service.batches[0].Requests[0].UpdateSheetProperties; rq.Properties.SheetId != 1729 || rq.Properties.Title != "Audit" {
		t.Errorf("Incorrect rename request %+v", rq.Properties)
	}

	if err := s.RenameWorksheet(context.Background(), "Nope", "Audit"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCreateSheet(t *testing.T) {
	service := stub{
		reply: &sheets.BatchUpdateSpreadsheetResponse{
			Replies: []*sheets.Response{
				&sheets.Response{
					AddSheet: &sheets.AddSheetResponse{
						Properties: &sheets.SheetProperties{SheetId: 2048, Title: "Report"},
					},
				},
			},
		},
	}

	id, ok, err := NewSpreadsheet(&service, "xyz").CreateSheet(context.Background(), "Report")
	if err != nil {
		t.Fatalf("Unexpected error returned from CreateSheet (%v)", err)
	}

	if !ok || id != 2048 {
		t.Errorf("Incorrect sheet ID - expected:%v, got:%v (%v)", 2048, id, ok)
	}

	if rq := service.batches[0].Requests[0].AddSheet; rq == nil || rq.Properties.Title != "Report" {
		t.Errorf("Incorrect add sheet request %+v", rq)
	}
}

func TestCreateSheetWithUnexpectedReply(t *testing.T) {
	replies := []*sheets.BatchUpdateSpreadsheetResponse{
		nil,
		&sheets.BatchUpdateSpreadsheetResponse{},
		&sheets.BatchUpdateSpreadsheetResponse{Replies: []*sheets.Response{&sheets.Response{}}},
	}

	for _, reply := range replies {
		service := stub{reply: reply}

		if _, ok, err := NewSpreadsheet(&service, "xyz").CreateSheet(context.Background(), "Report"); err != nil || ok {
			t.Errorf("Expected no sheet ID for reply %+v, got %v (%v)", reply, ok, err)
		}
	}
}

func TestFormatBackground(t *testing.T) {
	service := stub{spreadsheet: &worksheets}
	color := sheets.Color{Red: 1.0}

	if err := NewSpreadsheet(&service, "xyz").FormatBackground(context.Background(), "Log", "C7", &color); err != nil {
		t.Fatalf("Unexpected error returned from FormatBackground (%v)", err)
	}

	if len(service.batches) != 1 {
		t.Fatalf("Expected a single batch update, got %v", len(service.batches))
	}

	rq := service.batches[0].Requests[0].RepeatCell
	expected := sheets.GridRange{
		SheetId:          1729,
		StartRowIndex:    6,
		EndRowIndex:      7,
		StartColumnIndex: 2,
		EndColumnIndex:   3,
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}

	if !reflect.DeepEqual(*rq.Range, expected) {
		t.Errorf("Incorrect grid range\n   expected: %+v\n   got:      %+v", expected, *rq.Range)
	}

	if rq.Fields != "userEnteredFormat(backgroundColor)" {
		t.Errorf("Incorrect field mask %v", rq.Fields)
	}

	if rq.Cell.UserEnteredFormat.BackgroundColor != &color {
		t.Errorf("Incorrect background colour %+v", rq.Cell.UserEnteredFormat.BackgroundColor)
	}
}

func TestFormatBackgroundWithUnknownWorksheet(t *testing.T) {
	service := stub{spreadsheet: &worksheets}

	err := NewSpreadsheet(&service, "xyz").FormatBackground(context.Background(), "Nope", "C7", &sheets.Color{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if len(service.batches) != 0 {
		t.Errorf("Expected no batch update, got %v", len(service.batches))
	}
}

func TestFormatBackgroundWithInvalidCell(t *testing.T) {
	service := stub{spreadsheet: &worksheets}

	err := NewSpreadsheet(&service, "xyz").FormatBackground(context.Background(), "Log", "c7", &sheets.Color{})
	if !errors.Is(err, address.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	if len(service.batches) != 0 {
		t.Errorf("Expected no batch update, got %v", len(service.batches))
	}
}

func TestClear(t *testing.T) {
	service := stub{}
	s := NewSpreadsheet(&service, "xyz")

	if err := s.Clear(context.Background()); err != nil || service.requests != 0 {
		t.Errorf("Expected no-op for empty ranges, got %v (%v requests)", err, service.requests)
	}

	if err := s.Clear(context.Background(), "ACL!A2:E", "Log!A1:H"); err != nil {
		t.Fatalf("Unexpected error returned from Clear (%v)", err)
	}

	if !reflect.DeepEqual(service.cleared, []string{"ACL!A2:E", "Log!A1:H"}) {
		t.Errorf("Incorrect cleared ranges %v", service.cleared)
	}
}

func TestTransportErrors(t *testing.T) {
	cause := errors.New("connection refused")
	service := stub{err: cause}
	s := NewSpreadsheet(&service, "xyz")
	ctx := context.Background()

	tests := map[string]func() error{
		"get sheet title": func() error { _, _, err := s.SheetTitle(ctx, 0); return err },
		"get sheet ID":    func() error { _, _, err := s.SheetID(ctx, "ACL"); return err },
		"read range":      func() error { _, err := s.Read(ctx, "A1"); return err },
		"write range":     func() error { return s.Write(ctx, "A1", [][]string{{"x"}}) },
		"append rows":     func() error { return s.Append(ctx, "A1", [][]string{{"x"}}) },
		"write row":       func() error { return s.WriteRow(ctx, 1, 1, []string{"x"}) },
		"write column":    func() error { return s.WriteColumn(ctx, 1, 1, []string{"x"}) },
		"rename sheet":    func() error { return s.RenameSheet(ctx, "x") },
		"create sheet":    func() error { _, _, err := s.CreateSheet(ctx, "x"); return err },
		"clear ranges":    func() error { return s.Clear(ctx, "A1") },
	}

	for op, f := range tests {
		err := f()

		var terr *TransportError
		if !errors.As(err, &terr) {
			t.Errorf("%v: expected TransportError, got %v", op, err)
			continue
		}

		if terr.Op != op {
			t.Errorf("Incorrect operation - expected:%v, got:%v", op, terr.Op)
		}

		if !errors.Is(err, ErrTransport) || !errors.Is(err, cause) {
			t.Errorf("%v: TransportError does not wrap ErrTransport and cause (%v)", op, err)
		}
	}
}

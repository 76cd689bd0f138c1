// Package bulk scores questionnaire answers collected outside the
// interactive prompt: it reads (identifier, 57 answers) CSV records,
// exports scored results, and aggregates batch-level statistics.
package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lockhart9/stresscheck/internal/scoring"
)

// Record is one parsed batch row: a respondent identifier and a fully
// populated answer sheet.
type Record struct {
	Line  int // 1-based input line of the row
	ID    string
	Sheet *scoring.AnswerSheet
}

// Reader parses batch rows of the form id,a1,...,a57. Rows with an empty
// id are assigned a generated UUID. A row-level error invalidates only
// that row; subsequent Read calls continue with the next one.
type Reader struct {
	cr *csv.Reader
}

// NewReader wraps r for record-at-a-time parsing.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1 + scoring.QuestionCount
	cr.TrimLeadingSpace = true
	return &Reader{cr: cr}
}

// Read returns the next record, io.EOF at end of input, or an error
// describing the offending row.
func (r *Reader) Read() (*Record, error) {
	row, err := r.cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		// csv.ParseError already names the offending line.
		return nil, err
	}
	line, _ := r.cr.FieldPos(0)
	id := strings.TrimSpace(row[0])
	if id == "" {
		id = uuid.NewString()
	}
	sheet := scoring.NewAnswerSheet()
	for i, field := range row[1:] {
		answer, convErr := strconv.Atoi(strings.TrimSpace(field))
		if convErr != nil {
			return nil, fmt.Errorf("line %d: question %d: %q: %w", line, i+1, field, scoring.ErrIllegalAnswer)
		}
		if pushErr := sheet.Push(answer); pushErr != nil {
			return nil, fmt.Errorf("line %d: question %d: answer %d: %w", line, i+1, answer, pushErr)
		}
	}
	return &Record{Line: line, ID: id, Sheet: sheet}, nil
}

// ReadAll drains the reader, collecting parsed records and row errors
// separately so a batch run can report failures without aborting.
func (r *Reader) ReadAll() ([]*Record, []error) {
	var (
		records []*Record
		errs    []error
	)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
}

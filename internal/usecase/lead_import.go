package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Columns the CSV header must carry, in any order. The remaining lead
// fields (email, company, status, source, interestLevel, budget, notes)
// are picked up when present and left zero otherwise.
var requiredImportColumns = []string{"firstName", "lastName", "phone"}

// ImportCSV bulk-creates leads from a spreadsheet export. Rows are
// validated exactly like Create; rejected rows never abort the batch and
// are reported back with their 1-based data row number.
func (s *LeadService) ImportCSV(ctx context.Context, file io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ValidationError{Field: "file", Message: "missing CSV header row"}
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := cols[required]; !ok {
			return nil, &ValidationError{Field: "file", Message: "header is missing column " + required}
		}
	}

	result := &ImportResult{Rejected: []ImportRowError{}}
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			result.Rejected = append(result.Rejected, ImportRowError{Row: row, Field: "file", Message: "malformed CSV row"})
			continue
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		in := CreateLeadInput{
			FirstName:     field("firstName"),
			LastName:      field("lastName"),
			Email:         field("email"),
			Phone:         field("phone"),
			Company:       field("company"),
			Status:        field("status"),
			Source:        field("source"),
			InterestLevel: field("interestLevel"),
			Budget:        field("budget"),
			Notes:         field("notes"),
		}
		if in.Source == "" {
			in.Source = "import"
		}

		if _, err := s.Create(ctx, in); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				result.Rejected = append(result.Rejected, ImportRowError{Row: row, Field: verr.Field, Message: verr.Message})
				continue
			}
			// Storage failures are fatal for the whole batch, unlike
			// per-row validation.
			return nil, err
		}
		result.Count++
	}
	return result, nil
}

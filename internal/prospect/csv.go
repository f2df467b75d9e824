package prospect

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("atrisure/prospect")

// ExportHeader is the fixed column order of exported files.
var ExportHeader = []string{"id", "name", "email", "premium", "status"}

// importColumns maps each field to the header spellings it accepts, in priority order.
var importColumns = map[string][]string{
	"name":    {"name", "Name"},
	"email":   {"email", "Email"},
	"premium": {"premium", "Premium"},
	"status":  {"status", "Status"},
}

// ParsePremium coerces free-form currency input to a number. Everything except
// digits and '.' is stripped; unparseable results are 0.
func ParsePremium(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseCSV reads prospect rows from CSV text. The first non-empty line is the
// header. Rows with a missing or blank name or email are dropped; unknown or
// missing statuses become StatusNew. Returned records have no id.
func ParseCSV(r io.Reader) ([]Prospect, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := resolveColumns(header)

	var out []Prospect
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if isBlankRow(row) {
			continue
		}
		name, hasName := cell(row, cols["name"])
		email, hasEmail := cell(row, cols["email"])
		name, email = strings.TrimSpace(name), strings.TrimSpace(email)
		if !hasName || !hasEmail || name == "" || email == "" {
			continue
		}
		premium, _ := cell(row, cols["premium"])
		status, _ := cell(row, cols["status"])
		out = append(out, Prospect{
			Name:    name,
			Email:   email,
			Premium: ParsePremium(premium),
			Status:  StatusOrDefault(status),
		})
	}
	return out, nil
}

// resolveColumns maps field names to header indexes; -1 when absent.
func resolveColumns(header []string) map[string]int {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}
	cols := make(map[string]int, len(importColumns))
	for field, names := range importColumns {
		cols[field] = -1
		for _, n := range names {
			if i, ok := pos[n]; ok {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

func cell(row []string, i int) (string, bool) {
	if i < 0 || i >= len(row) {
		return "", false
	}
	return row[i], true
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ImportCSV parses CSV text and appends the rows to the registry with fresh ids.
func (r *Registry) ImportCSV(ctx context.Context, src io.Reader) ([]Prospect, error) {
	_, span := tracer.Start(ctx, "prospect.ImportCSV")
	defer span.End()

	rows, err := ParseCSV(src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	added := r.Append(rows...)
	span.SetAttributes(attribute.Int("prospect.imported", len(added)))
	r.logger.Info("prospects imported", "count", len(added))
	return added, nil
}

// ExportCSV writes every record with the fixed ExportHeader column order.
func (r *Registry) ExportCSV(ctx context.Context, dst io.Writer) error {
	return ExportRecords(ctx, dst, r.prospects)
}

// ExportRecords is ExportCSV over a detached snapshot, traced.
func ExportRecords(ctx context.Context, dst io.Writer, records []Prospect) error {
	_, span := tracer.Start(ctx, "prospect.ExportCSV")
	defer span.End()
	span.SetAttributes(attribute.Int("prospect.count", len(records)))

	if err := WriteCSV(dst, records); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// WriteCSV serializes records with the ExportHeader column order.
func WriteCSV(dst io.Writer, records []Prospect) error {
	w := csv.NewWriter(dst)
	if err := w.Write(ExportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range records {
		row := []string{
			p.ID,
			p.Name,
			p.Email,
			strconv.FormatFloat(p.Premium, 'f', -1, 64),
			p.Status.String(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFilename names the export file for a module.
func ExportFilename(moduleID string) string {
	return moduleID + "-export.csv"
}

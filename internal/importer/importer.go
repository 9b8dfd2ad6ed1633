// Package importer loads target facilities from XLSX and CSV files.
package importer

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// columnAliases maps facility fields to the header names that may carry
// them. Headers are matched case-insensitively after trimming.
var columnAliases = map[string][]string{
	"name":        {"name", "facility", "facility name", "facility_name", "organization"},
	"location":    {"location", "city, state", "city_state", "address", "region"},
	"website":     {"website", "url", "site", "web"},
	"pain_points": {"pain points", "pain_points", "challenges", "notes"},
	"contact":     {"contact", "contact name", "email", "contact_email"},
}

// ReadFacilities loads facilities from path, dispatching on extension.
// Supported formats are .xlsx and .csv.
func ReadFacilities(path string) ([]model.Facility, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := ReadXLSX(path, XLSXOptions{})
		if err != nil {
			return nil, err
		}
		return facilitiesFromRows(rows)
	case ".csv":
		return readCSV(path)
	default:
		return nil, eris.Errorf("importer: unsupported file type %q", filepath.Ext(path))
	}
}

func readCSV(path string) ([]model.Facility, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "importer: read csv")
		}
		rows = append(rows, record)
	}
	return facilitiesFromRows(rows)
}

// facilitiesFromRows maps a header row plus data rows onto facilities. Rows
// without a name are skipped with a warning rather than failing the import.
func facilitiesFromRows(rows [][]string) ([]model.Facility, error) {
	if len(rows) == 0 {
		return nil, eris.New("importer: file is empty")
	}

	cols := mapColumns(rows[0])
	if _, ok := cols["name"]; !ok {
		return nil, eris.New("importer: no facility name column found")
	}

	facilities := make([]model.Facility, 0, len(rows)-1)
	for i, row := range rows[1:] {
		name := cellAt(row, cols, "name")
		if name == "" {
			zap.L().Warn("importer: skipping row without facility name", zap.Int("row", i+2))
			continue
		}
		facilities = append(facilities, model.Facility{
			Name:       name,
			Location:   cellAt(row, cols, "location"),
			Website:    cellAt(row, cols, "website"),
			PainPoints: cellAt(row, cols, "pain_points"),
			Contact:    cellAt(row, cols, "contact"),
		})
	}
	return facilities, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		normalized := strings.ToLower(strings.TrimSpace(h))
		for field, aliases := range columnAliases {
			if _, taken := cols[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if normalized == alias {
					cols[field] = i
					break
				}
			}
		}
	}
	return cols
}

func cellAt(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

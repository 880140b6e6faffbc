package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cohortsplit/internal"
)

var (
	ErrNotFound = errors.New("input file not found")
	ErrDecode   = errors.New("decoding error")
)

// ReadRoster loads a roster export and reconciles its two-row header.
// CSV is the default; .xlsx/.xls inputs are read through excelize.
func ReadRoster(path, encName string) (internal.HeaderPlan, []internal.Row, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xls" {
		records, err := readXLSX(path)
		if err != nil {
			return internal.HeaderPlan{}, nil, err
		}
		plan, rows := Reconcile(records)
		return plan, rows, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return internal.HeaderPlan{}, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return internal.HeaderPlan{}, nil, err
	}

	text, err := decode(raw, encName)
	if err != nil {
		return internal.HeaderPlan{}, nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return internal.HeaderPlan{}, nil, fmt.Errorf("reading csv %s: %w", path, err)
	}

	plan, rows := Reconcile(records)
	return plan, rows, nil
}

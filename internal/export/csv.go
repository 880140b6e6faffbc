package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"cohortsplit/internal"
	"cohortsplit/internal/config"
	"cohortsplit/internal/ingest"
)

// WriteTables persists the three record sets as CSV files in the configured
// output directory, sharing the input encoding. Row order, and therefore
// positional alignment across the three files, is preserved.
func WriteTables(tables internal.Tables, cfg config.Config, logger *zap.Logger) error {
	enc, err := ingest.Lookup(cfg.Encoding)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}

	files := []struct {
		name    string
		header  []string
		records [][]string
	}{
		{cfg.PersonalFile, personalHeader, personalRecords(tables.Personal)},
		{cfg.SupportFile, supportHeader, supportRecords(tables.Support)},
		{cfg.EngagementFile, engagementHeader, engagementRecords(tables.Engagement)},
	}
	for _, file := range files {
		path := filepath.Join(cfg.OutputDir, file.name)
		if err := writeCSV(path, file.header, file.records, enc); err != nil {
			return err
		}
		logger.Info("wrote table", zap.Int("rows", len(file.records)), zap.String("path", path))
	}

	if cfg.WriteWorkbook {
		path := filepath.Join(cfg.OutputDir, cfg.WorkbookFile)
		if err := writeWorkbook(path, tables); err != nil {
			return err
		}
		logger.Info("wrote workbook", zap.String("path", path))
	}
	return nil
}

func writeCSV(path string, header []string, records [][]string, enc encoding.Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := transform.NewWriter(f, enc.NewEncoder())
	w := csv.NewWriter(tw)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return tw.Close()
}

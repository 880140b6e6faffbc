package pipeline

import (
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"cohortsplit/internal"
	"cohortsplit/internal/config"
	"cohortsplit/internal/export"
	"cohortsplit/internal/ingest"
)

var reCohortYear = regexp.MustCompile(`\b(20\d{2})\b`)

// CohortYear pulls a 20xx token out of the input file name, defaulting to the
// current year with a warning when none is present.
func CohortYear(path string, now time.Time, logger *zap.Logger) int {
	base := filepath.Base(path)
	if m := reCohortYear.FindStringSubmatch(base); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year
	}
	year := now.Year()
	logger.Warn("cohort year not found in filename; defaulting to current year", zap.Int("year", year))
	return year
}

// Run executes the one-shot transformation: read the roster, derive the three
// linked tables row by row, and write them out. Per-row anomalies degrade to
// empty fields; only I/O failures abort.
func Run(cfg config.Config, logger *zap.Logger) (internal.Tables, error) {
	logger.Info("starting clean and split",
		zap.String("input", cfg.InputPath),
		zap.String("outputDir", cfg.OutputDir))

	plan, rows, err := ingest.ReadRoster(cfg.InputPath, cfg.Encoding)
	if err != nil {
		return internal.Tables{}, err
	}

	year := cfg.CohortYear
	if year == 0 {
		year = CohortYear(cfg.InputPath, time.Now(), logger)
	}
	logger.Info("cohort year", zap.Int("year", year))

	if len(rows) == 0 {
		logger.Warn("no data rows found")
		return internal.Tables{}, nil
	}

	builder := NewBuilder(plan, year, time.Now(), logger)
	tables := internal.Tables{}
	for i, row := range rows {
		builder.Append(&tables, row, i)
	}

	if err := export.WriteTables(tables, cfg, logger); err != nil {
		return tables, err
	}

	logger.Info("summary: rows per table",
		zap.Int("personalParent", len(tables.Personal)),
		zap.Int("studySupport", len(tables.Support)),
		zap.Int("engagement", len(tables.Engagement)))
	if n := builder.MissingIDs(); n > 0 {
		logger.Warn("rows missing ID Number; included with empty ID", zap.Int("rows", n))
	}
	checkUniqueIdentifiers(tables, logger)

	return tables, nil
}

// checkUniqueIdentifiers is the post-hoc guard on the registry's uniqueness
// promise. A violation is logged, never fatal.
func checkUniqueIdentifiers(tables internal.Tables, logger *zap.Logger) {
	seen := make(map[string]bool, len(tables.Personal))
	for _, r := range tables.Personal {
		if seen[r.StudentID] {
			logger.Error("student identifiers are not unique; inspect generation logic",
				zap.String("studentId", r.StudentID))
			return
		}
		seen[r.StudentID] = true
	}
}

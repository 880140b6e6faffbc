package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath  string
	OutputDir  string
	Encoding   string
	CohortYear int

	PersonalFile   string
	SupportFile    string
	EngagementFile string
	WorkbookFile   string
	WriteWorkbook  bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		InputPath:  getEnv("ROSTER_INPUT", "2024 JGT Cohort - 2024 Cohort.csv"),
		OutputDir:  getEnv("OUTPUT_DIR", "outputs"),
		Encoding:   getEnv("ROSTER_ENCODING", "utf-8-sig"),
		CohortYear: getEnvInt("COHORT_YEAR", 0),

		PersonalFile:   "table_personal_parent.csv",
		SupportFile:    "table_study_support.csv",
		EngagementFile: "table_engagement_progress.csv",
		WorkbookFile:   "cohort_tables.xlsx",
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"cohortsplit/internal"
	"cohortsplit/internal/config"
)

func sampleTables() internal.Tables {
	return internal.Tables{
		Personal: []internal.PersonalRow{
			{StudentID: "josm2024", IDNumber: "8001015009087", Name: "Johan", Surname: "Smit"},
		},
		Support: []internal.SupportRow{
			{StudentID: "josm2024", IDNumber: "8001015009087", CareerOptions: "BSc Maths"},
		},
		Engagement: []internal.EngagementRow{
			{StudentID: "josm2024", IDNumber: "8001015009087", RatingRO: "3"},
		},
	}
}

func sampleConfig(dir string) config.Config {
	return config.Config{
		OutputDir:      dir,
		Encoding:       "utf-8-sig",
		PersonalFile:   "table_personal_parent.csv",
		SupportFile:    "table_study_support.csv",
		EngagementFile: "table_engagement_progress.csv",
		WorkbookFile:   "cohort_tables.xlsx",
	}
}

func TestWriteTables(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	cfg := sampleConfig(dir)

	if err := WriteTables(sampleTables(), cfg, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, cfg.PersonalFile))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("utf-8-sig output must carry a BOM")
	}
	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0][0] != "Student_ID" || len(records[0]) != len(personalHeader) {
		t.Fatalf("header row = %v", records[0])
	}
	if records[1][0] != "josm2024" {
		t.Fatalf("data row = %v", records[1])
	}
}

func TestWriteTablesUnknownEncoding(t *testing.T) {
	cfg := sampleConfig(t.TempDir())
	cfg.Encoding = "utf-16"
	if err := WriteTables(sampleTables(), cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteCSVLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := writeCSV(path, []string{"Name"}, [][]string{{"Zoë"}}, charmap.ISO8859_1)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(raw, []byte{'Z', 'o', 0xEB}) {
		t.Fatalf("not latin-1 encoded: %q", raw)
	}
}

func TestWriteTablesWorkbook(t *testing.T) {
	dir := t.TempDir()
	cfg := sampleConfig(dir)
	cfg.WriteWorkbook = true

	if err := WriteTables(sampleTables(), cfg, zap.NewNop()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, cfg.WorkbookFile))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	want := []string{"Personal & Parent", "Study & Support", "Engagement & Progress"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets = %v", got)
		}
	}

	val, err := f.GetCellValue("Personal & Parent", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if val != "josm2024" {
		t.Fatalf("A2 = %q", val)
	}
}

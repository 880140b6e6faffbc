package ingest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRosterCSV(t *testing.T) {
	data := []byte("\xef\xbb\xbf,,Comments,,,\n" +
		"Name,Surname,,Extra,,\n" +
		"Anna,Smit,\"line one\nline two\",x,y,z\n")
	path := writeTemp(t, "2024 roster.csv", data)

	plan, rows, err := ReadRoster(path, "utf-8-sig")
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Headers) != 6 {
		t.Fatalf("headers = %v", plan.Headers)
	}
	if plan.Headers[0] != "Name" {
		t.Fatalf("BOM not stripped: %q", plan.Headers[0])
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0]["Comments"] != "line one\nline two" {
		t.Fatalf("multiline cell lost: %q", rows[0]["Comments"])
	}
}

func TestReadRosterNotFound(t *testing.T) {
	_, _, err := ReadRoster(filepath.Join(t.TempDir(), "missing.csv"), "utf-8-sig")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestReadRosterBadUTF8(t *testing.T) {
	path := writeTemp(t, "bad.csv", []byte{0xff, 0xfe, 0x41})
	_, _, err := ReadRoster(path, "utf-8")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v", err)
	}
}

func TestReadRosterUnknownEncoding(t *testing.T) {
	path := writeTemp(t, "x.csv", []byte("a,b\nc,d\n"))
	_, _, err := ReadRoster(path, "koi8-r")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v", err)
	}
}

func TestReadRosterLatin1(t *testing.T) {
	// "Zoë" in ISO-8859-1.
	data := []byte(",,,,,\nName,Surname,,Extra,,\nZo\xeb,Smit,,,,\n")
	path := writeTemp(t, "latin.csv", data)

	_, rows, err := ReadRoster(path, "latin-1")
	if err != nil {
		t.Fatal(err)
	}
	if rows[0]["Name"] != "Zoë" {
		t.Fatalf("name = %q", rows[0]["Name"])
	}
}

func TestReadRosterXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	grid := [][]any{
		{"", "", "Comments", "", "", ""},
		{"Name", "Surname", "", "Extra", "E", "F"},
		{"Anna", "Smit", "note", "x", "y", "z"},
	}
	for r, row := range grid {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	path := writeTemp(t, "roster.xlsx", buf.Bytes())

	plan, rows, err := ReadRoster(path, "utf-8-sig")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0]["Comments"] != "note" {
		t.Fatalf("rows = %v", rows)
	}
	if plan.Headers[5] != "R3" {
		t.Fatalf("headers = %v", plan.Headers)
	}
}

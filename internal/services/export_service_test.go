package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
	"github.com/SohamBhandary/MoneyFrontend/internal/testutil"
)

type recordingSaver struct {
	filename string
	data     []byte
	calls    int
}

func (r *recordingSaver) Save(filename string, data []byte) error {
	r.calls++
	r.filename = filename
	r.data = data
	return nil
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename(models.LedgerTypeIncome); got != "income_details.xlsx" {
		t.Errorf("expected income_details.xlsx, got %s", got)
	}
	if got := ExportFilename(models.LedgerTypeExpense); got != "expense_details.xlsx" {
		t.Errorf("expected expense_details.xlsx, got %s", got)
	}
}

func TestDownload(t *testing.T) {
	t.Run("returns_upstream_bytes_with_deterministic_filename", func(t *testing.T) {
		fake := testutil.NewFakeRemote()
		fake.ExportData = []byte("spreadsheet")
		svc := NewExportService(fake)

		export, err := svc.Download(context.Background(), models.LedgerTypeIncome)
		testutil.AssertNoError(t, err)
		if export.Filename != "income_details.xlsx" {
			t.Errorf("unexpected filename %s", export.Filename)
		}
		if !bytes.Equal(export.Data, []byte("spreadsheet")) {
			t.Errorf("unexpected export bytes %q", export.Data)
		}
	})

	t.Run("upstream_failure_propagates", func(t *testing.T) {
		fake := testutil.NewFakeRemote()
		fake.DownloadErr = apperrors.Upstream("exporter down", nil)
		svc := NewExportService(fake)

		_, err := svc.Download(context.Background(), models.LedgerTypeExpense)
		testutil.AssertAppError(t, err, apperrors.ErrUpstream.Code)
	})
}

func TestSaveTo(t *testing.T) {
	t.Run("hands_bytes_and_filename_to_saver", func(t *testing.T) {
		fake := testutil.NewFakeRemote()
		fake.ExportData = []byte("sheet")
		svc := NewExportService(fake)
		saver := &recordingSaver{}

		testutil.AssertNoError(t, svc.SaveTo(context.Background(), models.LedgerTypeExpense, saver))
		if saver.calls != 1 || saver.filename != "expense_details.xlsx" || !bytes.Equal(saver.data, []byte("sheet")) {
			t.Errorf("saver got %d calls, filename %q, data %q", saver.calls, saver.filename, saver.data)
		}
	})

	t.Run("no_save_side_effect_on_failure", func(t *testing.T) {
		fake := testutil.NewFakeRemote()
		fake.DownloadErr = apperrors.Upstream("down", nil)
		svc := NewExportService(fake)
		saver := &recordingSaver{}

		testutil.AssertAppError(t, svc.SaveTo(context.Background(), models.LedgerTypeIncome, saver), apperrors.ErrUpstream.Code)
		if saver.calls != 0 {
			t.Errorf("saver must not be called on a failed download, got %d calls", saver.calls)
		}
	})
}

func TestBuildSnapshot(t *testing.T) {
	transactions := []models.Transaction{
		tx("Salary", "2024-01-15", "5000"),
		tx("Bonus", "2024-02-01", "1000"),
	}
	transactions[0].CategoryID = "c1"
	transactions[1].CategoryID = "ghost"
	categories := []models.Category{{ID: "c1", Name: "Work", Type: models.LedgerTypeIncome}}

	svc := NewExportService(testutil.NewFakeRemote())
	export, err := svc.BuildSnapshot(models.LedgerTypeIncome, transactions, categories)
	testutil.AssertNoError(t, err)
	if export.Filename != "income_details.xlsx" {
		t.Errorf("unexpected filename %s", export.Filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	testutil.AssertNoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	testutil.AssertNoError(t, err)
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][3] != "Date" {
		t.Errorf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "Salary" || rows[1][1] != "Work" {
		t.Errorf("expected resolved category name, got row %v", rows[1])
	}
	if rows[2][1] != "ghost" {
		t.Errorf("expected unresolved category id written verbatim, got row %v", rows[2])
	}
}

func TestDirSaver(t *testing.T) {
	dir := t.TempDir()
	saver := DirSaver{Dir: dir}

	testutil.AssertNoError(t, saver.Save("income_details.xlsx", []byte("data")))

	got, err := os.ReadFile(filepath.Join(dir, "income_details.xlsx"))
	testutil.AssertNoError(t, err)
	if !bytes.Equal(got, []byte("data")) {
		t.Errorf("unexpected file contents %q", got)
	}
}

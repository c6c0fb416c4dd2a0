package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/logger"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
)

// Export is a spreadsheet export ready to hand to a file-save collaborator.
type Export struct {
	Filename string
	Data     []byte
}

// ExportFilename returns the deterministic download filename for a ledger.
func ExportFilename(lt models.LedgerType) string {
	if lt == models.LedgerTypeIncome {
		return "income_details.xlsx"
	}
	return "expense_details.xlsx"
}

// ExportService requests ledger exports from the upstream API and can build
// a workbook locally from cached data. It never touches the transaction
// store; export is fire-and-forget from the ledger core's perspective.
type ExportService struct {
	remote RemoteSource
	log    *zap.SugaredLogger
}

// NewExportService creates a new ExportServicer.
func NewExportService(source RemoteSource) *ExportService {
	return &ExportService{
		remote: source,
		log:    logger.Named("export"),
	}
}

// Download fetches the upstream spreadsheet export for the ledger.
func (s *ExportService) Download(ctx context.Context, lt models.LedgerType) (*Export, error) {
	data, err := s.remote.DownloadExport(ctx, lt)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: ExportFilename(lt), Data: data}, nil
}

// SaveTo downloads the export and hands it to the file-save collaborator.
// On download failure no save side effect happens.
func (s *ExportService) SaveTo(ctx context.Context, lt models.LedgerType, saver FileSaver) error {
	export, err := s.Download(ctx, lt)
	if err != nil {
		return err
	}
	if err := saver.Save(export.Filename, export.Data); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("saving %s: %w", export.Filename, err))
	}
	s.log.Infow("export saved", "ledger", lt, "filename", export.Filename, "bytes", len(export.Data))
	return nil
}

// BuildSnapshot renders the given cached ledger data to a workbook locally,
// without contacting the upstream API. Category ids are resolved to names
// through the registry snapshot; an unresolved id is written verbatim.
func (s *ExportService) BuildSnapshot(lt models.LedgerType, transactions []models.Transaction, categories []models.Category) (*Export, error) {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Name", "Category", "Amount", "Date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i, t := range transactions {
		category, ok := names[t.CategoryID]
		if !ok {
			category = t.CategoryID
		}
		amount, _ := t.Amount.Float64()
		row := []interface{}{t.Name, category, amount, t.Date}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("writing workbook: %w", err))
	}
	return &Export{Filename: ExportFilename(lt), Data: buf.Bytes()}, nil
}

// DirSaver saves exports into a directory on the local filesystem.
type DirSaver struct {
	Dir string
}

// Save writes the export under the saver's directory.
func (d DirSaver) Save(filename string, data []byte) error {
	return os.WriteFile(filepath.Join(d.Dir, filename), data, 0o644)
}

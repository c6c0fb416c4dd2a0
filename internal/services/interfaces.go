// Package services implements the transaction ledger core: per-ledger caches
// of transactions and categories, candidate validation, mutation
// orchestration against the upstream API, chart-series aggregation, and
// spreadsheet export.
package services

import (
	"context"

	"github.com/SohamBhandary/MoneyFrontend/internal/models"
	"github.com/SohamBhandary/MoneyFrontend/internal/remote"
)

// RemoteSource defines the upstream money manager API operations the ledger
// core consumes. *remote.Client satisfies it; tests substitute a fake.
type RemoteSource interface {
	ListTransactions(ctx context.Context, lt models.LedgerType) ([]models.Transaction, error)
	ListCategories(ctx context.Context, lt models.LedgerType) ([]models.Category, error)
	CreateTransaction(ctx context.Context, lt models.LedgerType, draft remote.NewTransaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, lt models.LedgerType, id string) error
	DownloadExport(ctx context.Context, lt models.LedgerType) ([]byte, error)
}

// LedgerServicer is the ledger surface exposed to the HTTP handlers.
type LedgerServicer interface {
	Type() models.LedgerType
	Refresh(ctx context.Context) error
	RefreshTransactions(ctx context.Context) error
	RefreshCategories(ctx context.Context) error
	Transactions() []models.Transaction
	Categories() []models.Category
	Create(ctx context.Context, draft Draft) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Chart() []ChartPoint
}

// ExportServicer is the export surface exposed to the HTTP handlers.
type ExportServicer interface {
	Download(ctx context.Context, lt models.LedgerType) (*Export, error)
	SaveTo(ctx context.Context, lt models.LedgerType, saver FileSaver) error
	BuildSnapshot(lt models.LedgerType, transactions []models.Transaction, categories []models.Category) (*Export, error)
}

// FileSaver persists an export on behalf of the caller. Implementations own
// the platform side effect (filesystem write, browser download, ...); the
// core only hands over bytes and a filename.
type FileSaver interface {
	Save(filename string, data []byte) error
}

package testutil

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
	"github.com/SohamBhandary/MoneyFrontend/internal/remote"

	"github.com/shopspring/decimal"
)

// FakeRemote is an in-memory stand-in for the upstream money manager API.
// It assigns ids on create, counts calls per operation, and can be forced
// to fail or block per operation. Safe for concurrent use.
type FakeRemote struct {
	mu           sync.Mutex
	transactions map[models.LedgerType][]models.Transaction
	categories   map[models.LedgerType][]models.Category
	nextID       int

	// Forced failures, applied per operation when non-nil.
	ListTransactionsErr error
	ListCategoriesErr   error
	CreateErr           error
	DeleteErr           error
	DownloadErr         error

	// When non-nil, ListTransactions blocks until the channel is closed,
	// letting tests hold a refresh in flight.
	ListTransactionsGate chan struct{}

	// Export payload served by DownloadExport.
	ExportData []byte

	// Call counters.
	ListTransactionsCalls int
	ListCategoriesCalls   int
	CreateCalls           int
	DeleteCalls           int
	DownloadCalls         int
}

// NewFakeRemote creates an empty fake upstream API.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		transactions: make(map[models.LedgerType][]models.Transaction),
		categories:   make(map[models.LedgerType][]models.Category),
		ExportData:   []byte("xlsx-bytes"),
	}
}

// SeedTransaction stores a transaction upstream, assigning it an id.
func (f *FakeRemote) SeedTransaction(lt models.LedgerType, name, categoryID, amount, date string) models.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := models.Transaction{
		ID:         f.assignID(),
		Name:       name,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
		Type:       lt,
	}
	f.transactions[lt] = append(f.transactions[lt], t)
	return t
}

// SeedCategory stores a category upstream.
func (f *FakeRemote) SeedCategory(lt models.LedgerType, id, name string) models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Category{ID: id, Name: name, Type: lt}
	f.categories[lt] = append(f.categories[lt], c)
	return c
}

// ListTransactions implements services.RemoteSource.
func (f *FakeRemote) ListTransactions(ctx context.Context, lt models.LedgerType) ([]models.Transaction, error) {
	f.mu.Lock()
	f.ListTransactionsCalls++
	gate := f.ListTransactionsGate
	err := f.ListTransactionsErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, apperrors.Upstream("", ctx.Err())
		}
	}
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Transaction, len(f.transactions[lt]))
	copy(out, f.transactions[lt])
	return out, nil
}

// ListCategories implements services.RemoteSource.
func (f *FakeRemote) ListCategories(ctx context.Context, lt models.LedgerType) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCategoriesCalls++
	if f.ListCategoriesErr != nil {
		return nil, f.ListCategoriesErr
	}
	out := make([]models.Category, len(f.categories[lt]))
	copy(out, f.categories[lt])
	return out, nil
}

// CreateTransaction implements services.RemoteSource. The created record
// gets a server-assigned id and joins the upstream collection, so it shows
// up on the next refresh.
func (f *FakeRemote) CreateTransaction(ctx context.Context, lt models.LedgerType, draft remote.NewTransaction) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	amount, err := decimal.NewFromString(draft.Amount.String())
	if err != nil {
		return nil, apperrors.Upstream("Invalid amount", err)
	}

	created := models.Transaction{
		ID:         f.assignID(),
		Name:       draft.Name,
		CategoryID: draft.CategoryID,
		Amount:     amount,
		Date:       draft.Date,
		Icon:       draft.Icon,
		Type:       lt,
	}
	f.transactions[lt] = append(f.transactions[lt], created)
	return &created, nil
}

// DeleteTransaction implements services.RemoteSource. Deleting an unknown id
// fails the way the real upstream does.
func (f *FakeRemote) DeleteTransaction(ctx context.Context, lt models.LedgerType, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}

	list := f.transactions[lt]
	for i, t := range list {
		if t.ID == id {
			f.transactions[lt] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return apperrors.Upstream("Transaction not found", nil)
}

// DownloadExport implements services.RemoteSource.
func (f *FakeRemote) DownloadExport(ctx context.Context, lt models.LedgerType) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DownloadCalls++
	if f.DownloadErr != nil {
		return nil, f.DownloadErr
	}
	out := make([]byte, len(f.ExportData))
	copy(out, f.ExportData)
	return out, nil
}

// Calls returns the total number of upstream calls of any kind.
func (f *FakeRemote) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListTransactionsCalls + f.ListCategoriesCalls + f.CreateCalls + f.DeleteCalls + f.DownloadCalls
}

func (f *FakeRemote) assignID() string {
	f.nextID++
	return fmt.Sprintf("t%d", f.nextID)
}

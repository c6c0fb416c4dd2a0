package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/logger"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
	"github.com/SohamBhandary/MoneyFrontend/internal/remote"
)

// LedgerService owns the in-memory transaction store and category registry
// for one ledger type and coordinates every mutation against the upstream
// API. The cached collections are only ever replaced wholesale by a
// successful refresh; create/delete never patch them locally. Safe for
// concurrent use.
type LedgerService struct {
	ledgerType models.LedgerType
	remote     RemoteSource
	log        *zap.SugaredLogger

	mu           sync.Mutex
	transactions []models.Transaction
	categories   []models.Category
	// In-flight guards, one per cached collection. Checked and set under mu
	// before a fetch is issued, cleared unconditionally when it settles.
	fetchingTransactions bool
	fetchingCategories   bool
}

// NewLedgerService creates a LedgerServicer for the given ledger type.
func NewLedgerService(lt models.LedgerType, source RemoteSource) *LedgerService {
	return &LedgerService{
		ledgerType: lt,
		remote:     source,
		log:        logger.Named(string(lt)),
	}
}

// Type returns the ledger type this service owns.
func (s *LedgerService) Type() models.LedgerType { return s.ledgerType }

// Refresh refreshes the transaction store and the category registry
// concurrently. A suppressed refresh on either collection is not a failure.
func (s *LedgerService) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ignoreInFlight(s.RefreshTransactions(ctx)) })
	g.Go(func() error { return ignoreInFlight(s.RefreshCategories(ctx)) })
	return g.Wait()
}

// RefreshTransactions replaces the transaction store with the full current
// set from the upstream API. If a transaction refresh is already in flight
// the call is a no-op and returns ErrRefreshInFlight immediately, without
// issuing a second request. On failure the previous snapshot stays intact.
func (s *LedgerService) RefreshTransactions(ctx context.Context) error {
	if !s.acquire(&s.fetchingTransactions) {
		return apperrors.ErrRefreshInFlight
	}
	defer s.release(&s.fetchingTransactions)

	transactions, err := s.remote.ListTransactions(ctx, s.ledgerType)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()
	return nil
}

// RefreshCategories replaces the category registry with the full current set
// from the upstream API, under the same in-flight and failure semantics as
// RefreshTransactions.
func (s *LedgerService) RefreshCategories(ctx context.Context) error {
	if !s.acquire(&s.fetchingCategories) {
		return apperrors.ErrRefreshInFlight
	}
	defer s.release(&s.fetchingCategories)

	categories, err := s.remote.ListCategories(ctx, s.ledgerType)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// Transactions returns a snapshot of the cached transaction store. Callers
// never observe a partially replaced collection.
func (s *LedgerService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a snapshot of the cached category registry.
func (s *LedgerService) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Create validates the draft and, only on a pass, submits it upstream with
// the amount coerced to a number. A validation rejection never reaches the
// wire. After a confirmed create both the store and the registry are
// refreshed; a refresh failure at that point is logged, not propagated,
// because the create itself already succeeded. On upstream failure the
// cached collections are untouched.
func (s *LedgerService) Create(ctx context.Context, draft Draft) (*models.Transaction, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}

	amount, err := parseAmount(draft.Amount)
	if err != nil {
		return nil, apperrors.Validation("amount must be a positive number")
	}

	created, err := s.remote.CreateTransaction(ctx, s.ledgerType, remote.NewTransaction{
		Name:       draft.Name,
		CategoryID: draft.CategoryID,
		Amount:     json.Number(amount.String()),
		Date:       draft.Date,
		Icon:       draft.Icon,
	})
	if err != nil {
		return nil, err
	}

	// Categories are refreshed too: server-side category usage can change
	// what the registry should offer.
	if err := s.Refresh(ctx); err != nil {
		s.log.Warnw("refresh after create failed", "error", err)
	}
	return created, nil
}

// Delete submits a delete for the given id and, on success, refreshes the
// transaction store. There is no optimistic local removal: the store only
// ever reflects confirmed upstream state. Upstream failures, including
// deleting an id that is already gone, propagate verbatim.
func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.remote.DeleteTransaction(ctx, s.ledgerType, id); err != nil {
		return err
	}

	if err := ignoreInFlight(s.RefreshTransactions(ctx)); err != nil {
		s.log.Warnw("refresh after delete failed", "id", id, "error", err)
	}
	return nil
}

// Chart aggregates the current transaction snapshot into chart points.
func (s *LedgerService) Chart() []ChartPoint {
	return ChartPoints(s.Transactions())
}

// acquire atomically checks and sets an in-flight flag, reporting whether
// the caller won the right to fetch.
func (s *LedgerService) acquire(flag *bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if *flag {
		return false
	}
	*flag = true
	return true
}

// release clears an in-flight flag. Always deferred by the winner so a
// failed fetch cannot leave the flag stuck.
func (s *LedgerService) release(flag *bool) {
	s.mu.Lock()
	*flag = false
	s.mu.Unlock()
}

// ignoreInFlight maps the informational suppressed-refresh outcome to nil.
func ignoreInFlight(err error) error {
	if errors.Is(err, apperrors.ErrRefreshInFlight) {
		return nil
	}
	return err
}

// Ledgers holds one independent LedgerService per ledger type. The two
// ledgers never share a store or registry instance.
type Ledgers struct {
	income  *LedgerService
	expense *LedgerService
}

// NewLedgers creates the income and expense ledger services over a shared
// remote source.
func NewLedgers(source RemoteSource) *Ledgers {
	return &Ledgers{
		income:  NewLedgerService(models.LedgerTypeIncome, source),
		expense: NewLedgerService(models.LedgerTypeExpense, source),
	}
}

// For returns the ledger service owning the given type.
func (l *Ledgers) For(lt models.LedgerType) (LedgerServicer, error) {
	switch lt {
	case models.LedgerTypeIncome:
		return l.income, nil
	case models.LedgerTypeExpense:
		return l.expense, nil
	}
	return nil, apperrors.ErrUnknownLedger
}

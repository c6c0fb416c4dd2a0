package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/services"
)

// LedgerHandler handles transaction, category, and chart requests for both
// ledgers.
type LedgerHandler struct {
	ledgers *services.Ledgers
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgers *services.Ledgers) *LedgerHandler {
	return &LedgerHandler{ledgers: ledgers}
}

// ListTransactions refreshes the ledger's transaction store and returns the
// resulting snapshot. A refresh suppressed by one already in flight still
// answers with the cached snapshot; a failed refresh is an error and the
// cache is left as it was.
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	if err := svc.RefreshTransactions(c.Request.Context()); err != nil && !errors.Is(err, apperrors.ErrRefreshInFlight) {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": svc.Transactions()})
}

// CreateTransaction validates and submits a candidate transaction. A
// validation rejection answers 400 with the rule's reason and never touches
// the upstream API.
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	var draft services.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWith(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Malformed request body"))
		return
	}

	created, err := svc.Create(c.Request.Context(), draft)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     ledgerLabel(svc.Type()) + " added successfully",
		"transaction": created,
	})
}

// DeleteTransaction deletes a transaction by id. Failures from upstream,
// including deleting an id that is already gone, pass through verbatim.
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": ledgerLabel(svc.Type()) + " deleted successfully",
	})
}

// ListCategories refreshes the ledger's category registry and returns the
// resulting snapshot.
func (h *LedgerHandler) ListCategories(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	if err := svc.RefreshCategories(c.Request.Context()); err != nil && !errors.Is(err, apperrors.ErrRefreshInFlight) {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": svc.Categories()})
}

// Chart returns the ledger's cached transactions aggregated into chart
// points. It serves from the snapshot and never triggers a fetch; an empty
// ledger yields an empty series, not an error.
func (h *LedgerHandler) Chart(c *gin.Context) {
	svc, ok := ledgerFromPath(c, h.ledgers)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": svc.Chart()})
}

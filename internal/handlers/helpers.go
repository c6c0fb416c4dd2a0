// Package handlers exposes the ledger core to the web UI over HTTP. Every
// outcome, success or failure, is a JSON result; business errors surface
// through the error middleware as typed responses rather than panics.
package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/models"
	"github.com/SohamBhandary/MoneyFrontend/internal/services"
)

// ledgerURI binds the :type path parameter of every ledger route.
type ledgerURI struct {
	Type string `uri:"type" binding:"required,ledger_type"`
}

// ledgerFromPath resolves the :type path parameter to its ledger service.
// On failure it attaches the error and aborts; callers just return.
func ledgerFromPath(c *gin.Context, ledgers *services.Ledgers) (services.LedgerServicer, bool) {
	var uri ledgerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		abortWith(c, apperrors.ErrUnknownLedger)
		return nil, false
	}

	svc, err := ledgers.For(models.LedgerType(uri.Type))
	if err != nil {
		abortWith(c, err)
		return nil, false
	}
	return svc, true
}

// abortWith hands an error to the error middleware and stops the chain.
func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ledgerLabel renders a ledger type for user-facing messages
// ("Income added successfully").
func ledgerLabel(lt models.LedgerType) string {
	if lt == models.LedgerTypeIncome {
		return "Income"
	}
	return "Expense"
}

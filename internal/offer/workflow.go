// Package offer drives the negotiation workflow for product offers:
// submit, accept, reject, and the direct-purchase shortcut. All state
// lives behind the commerce API; this package only reflects its answers
// and enforces the input boundary that must hold before any call leaves
// the process.
package offer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ebalci/pazaryeri/internal/commerce"
)

// Input-boundary violations, raised before any network call is made.
var (
	ErrInvalidPrice      = errors.New("offered price must be positive")
	ErrPriceAboveListing = errors.New("offered price exceeds the listing price")
)

// Failure is an operation the collaborator declined: the offer was
// already resolved, the product already sold, or the caller was not
// entitled to act on it.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	if f.Message != "" {
		return fmt.Sprintf("offer declined: %s", f.Message)
	}
	return "offer declined"
}

// FallbackMessage is the generic user-facing text for failures the
// collaborator gave no message for.
const FallbackMessage = "Bir sorun oluştu!"

// UserMessage resolves err to the text shown in the failure toast:
// the collaborator-supplied message when there is one, otherwise the
// generic fallback.
func UserMessage(err error) string {
	var f *Failure
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	var apiErr *commerce.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return FallbackMessage
}

// Workflow executes offer operations against the commerce API. A failed
// operation changes nothing locally; callers keep rendering the state
// they last fetched.
type Workflow struct {
	api    *commerce.Client
	logger *slog.Logger
}

func NewWorkflow(api *commerce.Client, logger *slog.Logger) *Workflow {
	return &Workflow{api: api, logger: logger}
}

// Submit places a new offer on a product. The price must be positive
// and no higher than the listing price; violations short-circuit before
// any network call.
func (w *Workflow) Submit(ctx context.Context, buyerID, ownerID, productID int64, price, listPrice float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	if price > listPrice {
		return ErrPriceAboveListing
	}

	res, err := w.api.SubmitOffer(ctx, ownerID, buyerID, productID, price)
	if err != nil {
		w.logger.Warn("submit offer", "product_id", productID, "error", err)
		return err
	}
	if !res.IsSuccess {
		return &Failure{Message: res.Message}
	}
	return nil
}

// Accept resolves an open offer in the bidder's favor. Accepting an
// offer that is no longer in the Offered state fails; the displayed
// status stays whatever the last fetch said until the caller refreshes.
func (w *Workflow) Accept(ctx context.Context, offerID, ownerID int64) error {
	if err := w.api.AcceptOffer(ctx, offerID, ownerID); err != nil {
		w.logger.Warn("accept offer", "offer_id", offerID, "error", err)
		return err
	}
	return nil
}

// Reject resolves an open offer against the bidder.
func (w *Workflow) Reject(ctx context.Context, offerID int64) error {
	if err := w.api.RejectOffer(ctx, offerID); err != nil {
		w.logger.Warn("reject offer", "offer_id", offerID, "error", err)
		return err
	}
	return nil
}

// Buy purchases the product outright. After a success the product is
// sold and must not be offered or bought again; callers re-fetch the
// product list rather than patching it locally.
func (w *Workflow) Buy(ctx context.Context, buyerID, productID int64) error {
	res, err := w.api.BuyProduct(ctx, buyerID, productID)
	if err != nil {
		w.logger.Warn("buy product", "product_id", productID, "error", err)
		return err
	}
	if !res.IsSuccess {
		return &Failure{Message: res.Message}
	}
	return nil
}

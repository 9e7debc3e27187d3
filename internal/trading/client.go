// Package trading defines the venue-agnostic trading contract: the value
// types, requests, responses, and client interface the rest of the system
// programs against, independent of any particular brokerage.
package trading

import (
	"context"
	"errors"
)

// ErrNoOpenPosition reports that the venue holds no open position for the
// requested symbol. Callers should treat it as a normal empty outcome,
// distinct from a transport failure:
//
//	resp, err := client.GetOpenPosition(ctx, "BTC/USD")
//	if errors.Is(err, trading.ErrNoOpenPosition) {
//		// nothing held, not a fault
//	}
var ErrNoOpenPosition = errors.New("no open position")

// Client is the venue-agnostic trading contract. Implementations wrap one
// brokerage and translate between its native model and the types in this
// package.
//
// Read operations are safe to call concurrently. PlaceOrder is the only
// state-changing operation; callers that care about the relative ordering of
// multiple placements must serialize them themselves, since implementations
// do not queue or sequence orders internally.
type Client interface {
	// PlaceOrder submits one order and returns the venue-assigned order ID.
	PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)

	// GetOrders lists every order on the account across all statuses, so
	// callers can reconcile against terminal states (filled, expired). An
	// account with no orders gets an empty response, not an error.
	GetOrders(ctx context.Context) (*GetOrdersResponse, error)

	// GetCash reports the account's cash balance.
	GetCash(ctx context.Context) (*GetCashResponse, error)

	// GetBuyingPower reports the account's buying power.
	//
	// Deprecated: derive spending capacity from GetCash. Retained so callers
	// on the earlier contract revision keep compiling; it will be removed in
	// the next contract revision.
	GetBuyingPower(ctx context.Context) (*GetBuyingPowerResponse, error)

	// GetOpenPosition reports the venue's current holding for one symbol.
	// A symbol without a held position fails with ErrNoOpenPosition.
	GetOpenPosition(ctx context.Context, symbol string) (*GetOpenPositionResponse, error)
}

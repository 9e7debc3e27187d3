package trading

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountKind discriminates how an Amount sizes an order.
type AmountKind string

const (
	// AmountQuantity sizes an order by a count of units of the base asset.
	AmountQuantity AmountKind = "quantity"
	// AmountNotional sizes an order by the quote-currency value to trade.
	AmountNotional AmountKind = "notional"
)

// Amount is a tagged order size: either a unit quantity or a notional
// currency value, never both at once.
type Amount struct {
	Kind  AmountKind      `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// Quantity builds an Amount sized by units of the base asset.
func Quantity(q decimal.Decimal) Amount {
	return Amount{Kind: AmountQuantity, Value: q}
}

// Notional builds an Amount sized by quote-currency value.
func Notional(n decimal.Decimal) Amount {
	return Amount{Kind: AmountNotional, Value: n}
}

// Equal reports whether two amounts have the same kind and the same numeric
// value. Use it instead of ==: decimals carrying different exponents compare
// unequal as struct fields even when numerically identical.
func (a Amount) Equal(b Amount) bool {
	return a.Kind == b.Kind && a.Value.Equal(b.Value)
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Value, a.Kind)
}

// AssetPair identifies a tradable market by its base and quote assets,
// e.g. BTC/USD.
type AssetPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// ParsePair parses "BASE/QUOTE" into an AssetPair. The input is trimmed and
// upper-cased; both legs must be non-empty.
func ParsePair(s string) (AssetPair, error) {
	base, quote, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok {
		return AssetPair{}, fmt.Errorf("asset pair %q: want BASE/QUOTE", s)
	}
	base, quote = strings.TrimSpace(base), strings.TrimSpace(quote)
	if base == "" || quote == "" {
		return AssetPair{}, fmt.Errorf("asset pair %q: empty base or quote", s)
	}
	return AssetPair{Base: base, Quote: quote}, nil
}

// MustPair is ParsePair for statically known inputs; it panics on error.
func MustPair(s string) AssetPair {
	p, err := ParsePair(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the pair as BASE/QUOTE, the inverse of ParsePair.
func (p AssetPair) String() string {
	return p.Base + "/" + p.Quote
}

// OrderSide is the direction of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderType describes how an order prices its execution. Only market and
// limit orders are part of the contract.
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

// OrderStatus is the lifecycle state of an order as reported by the venue.
//
// Venues grow new states over time, so statuses the contract does not model
// are folded into OrderStatusUnimplemented rather than rejected; a listing
// that contains one unknown status must not fail wholesale.
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusPartiallyFilled OrderStatus = "partially_filled"
	OrderStatusFilled          OrderStatus = "filled"
	OrderStatusExpired         OrderStatus = "expired"
	OrderStatusUnimplemented   OrderStatus = "unimplemented"
)

// Order is a venue order as observed through the contract. Orders are
// created via Client.PlaceOrder and mutated only by the venue; this side
// never writes to one.
type Order struct {
	OrderID          string           `json:"order_id"`
	AssetSymbol      string           `json:"asset_symbol"`
	Amount           Amount           `json:"amount"`
	FilledQuantity   decimal.Decimal  `json:"filled_quantity"`
	AverageFillPrice *decimal.Decimal `json:"average_fill_price,omitempty"`
	Status           OrderStatus      `json:"status"`
	Type             OrderType        `json:"type"`
}

// OpenPosition is a point-in-time snapshot of the venue's reported holding
// for one symbol, re-fetched on every query.
type OpenPosition struct {
	AssetSymbol       string           `json:"asset_symbol"`
	AverageEntryPrice *decimal.Decimal `json:"average_entry_price,omitempty"`
	Quantity          decimal.Decimal  `json:"quantity"`
	MarketValue       decimal.Decimal  `json:"market_value"`
}

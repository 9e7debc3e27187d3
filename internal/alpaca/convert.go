package alpaca

import (
	"errors"
	"fmt"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"

	"github.com/junioraw/irontrade-alpaca/internal/trading"
)

// ErrUnsupportedOrderType reports an Alpaca order type with no counterpart
// in the trading contract (stop, stop_limit, trailing_stop). There is no
// lossy fallback for order types: conversion fails instead of mislabelling.
var ErrUnsupportedOrderType = errors.New("unsupported order type")

// brokerSide maps a contract order side onto Alpaca's. The switch is
// closed: an unknown side is refused before anything reaches the wire.
func brokerSide(side trading.OrderSide) (alpacaapi.Side, error) {
	switch side {
	case trading.OrderSideBuy:
		return alpacaapi.Buy, nil
	case trading.OrderSideSell:
		return alpacaapi.Sell, nil
	default:
		return "", fmt.Errorf("unknown order side %q", side)
	}
}

// brokerAmount splits a tagged amount into the quantity/notional pointer
// pair Alpaca's order schema expects; exactly one pointer is set.
func brokerAmount(a trading.Amount) (qty, notional *decimal.Decimal) {
	v := a.Value
	if a.Kind == trading.AmountNotional {
		return nil, &v
	}
	return &v, nil
}

// internalAmount rebuilds the tagged amount from Alpaca's pointer pair.
// Quantity wins when both are present; an order carrying neither is
// normalized to a zero quantity so listings stay total.
func internalAmount(qty, notional *decimal.Decimal) trading.Amount {
	switch {
	case qty != nil:
		return trading.Quantity(*qty)
	case notional != nil:
		return trading.Notional(*notional)
	default:
		return trading.Quantity(decimal.Zero)
	}
}

// internalStatus maps Alpaca's order status onto the contract's. Statuses
// the contract does not model (accepted, pending_new, canceled, ...) map to
// trading.OrderStatusUnimplemented.
func internalStatus(status string) trading.OrderStatus {
	switch status {
	case "new":
		return trading.OrderStatusNew
	case "partially_filled":
		return trading.OrderStatusPartiallyFilled
	case "filled":
		return trading.OrderStatusFilled
	case "expired":
		return trading.OrderStatusExpired
	default:
		return trading.OrderStatusUnimplemented
	}
}

// internalOrderType maps Alpaca's order type onto the contract's; anything
// beyond market and limit fails with ErrUnsupportedOrderType.
func internalOrderType(t alpacaapi.OrderType) (trading.OrderType, error) {
	switch t {
	case alpacaapi.Market:
		return trading.OrderTypeMarket, nil
	case alpacaapi.Limit:
		return trading.OrderTypeLimit, nil
	default:
		return "", fmt.Errorf("order type %q: %w", t, ErrUnsupportedOrderType)
	}
}

// internalOrder assembles a contract order from Alpaca's native record.
func internalOrder(o *alpacaapi.Order) (trading.Order, error) {
	typ, err := internalOrderType(o.Type)
	if err != nil {
		return trading.Order{}, fmt.Errorf("order %s: %w", o.ID, err)
	}
	return trading.Order{
		OrderID:          o.ID,
		AssetSymbol:      o.Symbol,
		Amount:           internalAmount(o.Qty, o.Notional),
		FilledQuantity:   o.FilledQty,
		AverageFillPrice: copyDecimal(o.FilledAvgPrice),
		Status:           internalStatus(o.Status),
		Type:             typ,
	}, nil
}

// internalPosition assembles a contract position from Alpaca's native
// record. A market value the venue has not priced yet is reported as zero.
func internalPosition(p *alpacaapi.Position) trading.OpenPosition {
	entry := p.AvgEntryPrice
	return trading.OpenPosition{
		AssetSymbol:       p.Symbol,
		AverageEntryPrice: &entry,
		Quantity:          p.Qty,
		MarketValue:       derefDecimal(p.MarketValue),
	}
}

// copyDecimal clones an optional decimal so contract values never alias SDK
// memory.
func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

package alpaca

import (
	"testing"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/junioraw/irontrade-alpaca/internal/trading"
)

func TestBrokerSide(t *testing.T) {
	t.Run("buy and sell map cleanly", func(t *testing.T) {
		side, err := brokerSide(trading.OrderSideBuy)
		assert.NoError(t, err)
		assert.Equal(t, alpacaapi.Buy, side)

		side, err = brokerSide(trading.OrderSideSell)
		assert.NoError(t, err)
		assert.Equal(t, alpacaapi.Sell, side)
	})

	t.Run("anything else is refused", func(t *testing.T) {
		_, err := brokerSide(trading.OrderSide("hold"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "hold")
	})
}

func TestAmountConversion(t *testing.T) {
	t.Run("quantity occupies the qty slot", func(t *testing.T) {
		qty, notional := brokerAmount(trading.Quantity(decimal.RequireFromString("0.000001234")))
		assert.Nil(t, notional)
		if assert.NotNil(t, qty) {
			assert.Equal(t, "0.000001234", qty.String())
		}
	})

	t.Run("notional occupies the notional slot", func(t *testing.T) {
		qty, notional := brokerAmount(trading.Notional(decimal.RequireFromString("20")))
		assert.Nil(t, qty)
		if assert.NotNil(t, notional) {
			assert.Equal(t, "20", notional.String())
		}
	})

	t.Run("round trip preserves kind and digits", func(t *testing.T) {
		for _, amount := range []trading.Amount{
			trading.Quantity(decimal.RequireFromString("1.23456789012345")),
			trading.Notional(decimal.RequireFromString("99999.000000001")),
		} {
			qty, notional := brokerAmount(amount)
			back := internalAmount(qty, notional)
			assert.True(t, amount.Equal(back), "want %s, got %s", amount, back)
		}
	})

	t.Run("round trip holds starting broker side", func(t *testing.T) {
		qty := decimal.RequireFromString("0.375")
		backQty, backNotional := brokerAmount(internalAmount(&qty, nil))
		assert.Nil(t, backNotional)
		if assert.NotNil(t, backQty) {
			assert.True(t, qty.Equal(*backQty))
		}

		notional := decimal.RequireFromString("250.50")
		backQty, backNotional = brokerAmount(internalAmount(nil, &notional))
		assert.Nil(t, backQty)
		if assert.NotNil(t, backNotional) {
			assert.True(t, notional.Equal(*backNotional))
		}
	})

	t.Run("quantity wins when both slots are set", func(t *testing.T) {
		qty := decimal.RequireFromString("2")
		notional := decimal.RequireFromString("100")
		got := internalAmount(&qty, &notional)
		assert.True(t, got.Equal(trading.Quantity(qty)))
	})

	t.Run("neither slot set normalizes to zero quantity", func(t *testing.T) {
		got := internalAmount(nil, nil)
		assert.True(t, got.Equal(trading.Quantity(decimal.Zero)))
	})
}

func TestInternalStatus(t *testing.T) {
	cases := map[string]trading.OrderStatus{
		"new":              trading.OrderStatusNew,
		"partially_filled": trading.OrderStatusPartiallyFilled,
		"filled":           trading.OrderStatusFilled,
		"expired":          trading.OrderStatusExpired,
		"accepted":         trading.OrderStatusUnimplemented,
		"pending_new":      trading.OrderStatusUnimplemented,
		"canceled":         trading.OrderStatusUnimplemented,
		"done_for_day":     trading.OrderStatusUnimplemented,
		"":                 trading.OrderStatusUnimplemented,
	}
	for raw, want := range cases {
		assert.Equal(t, want, internalStatus(raw), "status %q", raw)
	}
}

func TestInternalOrderType(t *testing.T) {
	t.Run("market and limit map cleanly", func(t *testing.T) {
		typ, err := internalOrderType(alpacaapi.Market)
		assert.NoError(t, err)
		assert.Equal(t, trading.OrderTypeMarket, typ)

		typ, err = internalOrderType(alpacaapi.Limit)
		assert.NoError(t, err)
		assert.Equal(t, trading.OrderTypeLimit, typ)
	})

	t.Run("everything else fails hard", func(t *testing.T) {
		for _, typ := range []alpacaapi.OrderType{
			alpacaapi.Stop, alpacaapi.StopLimit, alpacaapi.TrailingStop, alpacaapi.OrderType("iceberg"),
		} {
			_, err := internalOrderType(typ)
			assert.ErrorIs(t, err, ErrUnsupportedOrderType, "type %q", typ)
		}
	})
}

func TestInternalOrder(t *testing.T) {
	t.Run("full limit order", func(t *testing.T) {
		qty := decimal.RequireFromString("1.5")
		avg := decimal.RequireFromString("64250.125")
		got, err := internalOrder(&alpacaapi.Order{
			ID:             "f6ad8f4f-3f5e-4a2a-8bb0-7f0f3c8f4f11",
			Symbol:         "BTCUSD",
			Qty:            &qty,
			FilledQty:      decimal.RequireFromString("0.5"),
			FilledAvgPrice: &avg,
			Status:         "partially_filled",
			Type:           alpacaapi.Limit,
		})
		assert.NoError(t, err)
		assert.Equal(t, "f6ad8f4f-3f5e-4a2a-8bb0-7f0f3c8f4f11", got.OrderID)
		assert.Equal(t, "BTCUSD", got.AssetSymbol)
		assert.True(t, got.Amount.Equal(trading.Quantity(qty)))
		assert.Equal(t, "0.5", got.FilledQuantity.String())
		if assert.NotNil(t, got.AverageFillPrice) {
			assert.Equal(t, "64250.125", got.AverageFillPrice.String())
			assert.NotSame(t, &avg, got.AverageFillPrice)
		}
		assert.Equal(t, trading.OrderStatusPartiallyFilled, got.Status)
		assert.Equal(t, trading.OrderTypeLimit, got.Type)
	})

	t.Run("unfilled market order keeps nil fill price", func(t *testing.T) {
		notional := decimal.RequireFromString("20")
		got, err := internalOrder(&alpacaapi.Order{
			ID:       "9f0c3a2e-91a5-4be5-b9f5-0d8c7e41d0aa",
			Symbol:   "AAVEUSD",
			Notional: &notional,
			Status:   "new",
			Type:     alpacaapi.Market,
		})
		assert.NoError(t, err)
		assert.Nil(t, got.AverageFillPrice)
		assert.True(t, got.Amount.Equal(trading.Notional(notional)))
		assert.Equal(t, trading.OrderStatusNew, got.Status)
	})

	t.Run("unsupported type names the order", func(t *testing.T) {
		_, err := internalOrder(&alpacaapi.Order{
			ID:     "stop-order-id",
			Symbol: "BTCUSD",
			Status: "new",
			Type:   alpacaapi.Stop,
		})
		assert.ErrorIs(t, err, ErrUnsupportedOrderType)
		assert.Contains(t, err.Error(), "stop-order-id")
	})
}

func TestInternalPosition(t *testing.T) {
	t.Run("priced position", func(t *testing.T) {
		value := decimal.RequireFromString("1999.9999")
		got := internalPosition(&alpacaapi.Position{
			Symbol:        "BTCUSD",
			Qty:           decimal.RequireFromString("0.03"),
			AvgEntryPrice: decimal.RequireFromString("66666.6667"),
			MarketValue:   &value,
		})
		assert.Equal(t, "BTCUSD", got.AssetSymbol)
		assert.Equal(t, "0.03", got.Quantity.String())
		if assert.NotNil(t, got.AverageEntryPrice) {
			assert.Equal(t, "66666.6667", got.AverageEntryPrice.String())
		}
		assert.Equal(t, "1999.9999", got.MarketValue.String())
	})

	t.Run("missing market value reads as zero", func(t *testing.T) {
		got := internalPosition(&alpacaapi.Position{
			Symbol:        "AAVEUSD",
			Qty:           decimal.RequireFromString("4"),
			AvgEntryPrice: decimal.RequireFromString("91.25"),
		})
		assert.True(t, got.MarketValue.IsZero())
	})
}

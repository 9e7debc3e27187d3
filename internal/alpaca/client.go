// Package alpaca implements the trading.Client contract on top of Alpaca's
// brokerage API. It owns no trading logic of its own: every operation
// translates contract types to Alpaca's native schema, delegates to the SDK,
// and translates the result back.
package alpaca

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	alpacaapi "github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"

	"github.com/junioraw/irontrade-alpaca/internal/logger"
	"github.com/junioraw/irontrade-alpaca/internal/trading"
)

// TradeAPI is the slice of the Alpaca SDK surface the adapter consumes.
// *alpacaapi.Client satisfies it; tests substitute their own implementation.
type TradeAPI interface {
	GetAccount() (*alpacaapi.Account, error)
	PlaceOrder(req alpacaapi.PlaceOrderRequest) (*alpacaapi.Order, error)
	GetOrders(req alpacaapi.GetOrdersRequest) ([]alpacaapi.Order, error)
	GetPosition(symbol string) (*alpacaapi.Position, error)
}

// Adapter is the Alpaca-backed trading client. It holds no mutable state
// beyond the underlying transport, so a single value is safe for concurrent
// use; ordering between concurrent placements is the caller's business.
type Adapter struct {
	api TradeAPI
}

var _ trading.Client = (*Adapter)(nil)

// New constructs an adapter speaking to Alpaca with the given configuration.
func New(cfg Config) (*Adapter, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("alpaca credentials missing: set api_key/api_secret or APCA_API_KEY_ID/APCA_API_SECRET_KEY")
	}
	client := alpacaapi.NewClient(alpacaapi.ClientOpts{
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		BaseURL:    cfg.BaseURL,
		RetryLimit: cfg.RetryLimit,
		RetryDelay: cfg.RetryDelay,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	})
	logger.Infof("alpaca adapter ready: base_url=%s paper=%t", cfg.BaseURL, cfg.IsPaper())
	return &Adapter{api: client}, nil
}

// NewWithAPI wires the adapter to a caller-supplied transport, mainly for
// tests.
func NewWithAPI(api TradeAPI) *Adapter {
	return &Adapter{api: api}
}

// PlaceOrder submits one order with Alpaca. The order type is derived from
// the request: a set limit price makes it a limit order, otherwise it goes
// out as a market order. Orders rest until canceled.
func (a *Adapter) PlaceOrder(ctx context.Context, req trading.OrderRequest) (*trading.OrderResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	side, err := brokerSide(req.Side)
	if err != nil {
		return nil, err
	}
	orderType := alpacaapi.Market
	if req.LimitPrice != nil {
		orderType = alpacaapi.Limit
	}
	qty, notional := brokerAmount(req.Amount)
	order, err := a.api.PlaceOrder(alpacaapi.PlaceOrderRequest{
		Symbol:        req.AssetPair.String(),
		Qty:           qty,
		Notional:      notional,
		Side:          side,
		Type:          orderType,
		TimeInForce:   alpacaapi.GTC,
		LimitPrice:    copyDecimal(req.LimitPrice),
		ClientOrderID: uuid.NewString(),
	})
	if err != nil {
		logger.Errorf("placing %s %s order for %s failed: %v", side, orderType, req.AssetPair, err)
		return nil, fmt.Errorf("place %s %s order for %s: %w", side, orderType, req.AssetPair, err)
	}
	logger.Infof("placed %s %s order %s: %s of %s", side, orderType, order.ID, req.Amount, req.AssetPair)
	return &trading.OrderResponse{OrderID: order.ID}, nil
}

// GetOrders lists every order on the account regardless of status. One
// order of an unsupported type fails the whole listing.
func (a *Adapter) GetOrders(ctx context.Context) (*trading.GetOrdersResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := a.api.GetOrders(alpacaapi.GetOrdersRequest{Status: "all"})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]trading.Order, 0, len(raw))
	for _, o := range raw {
		order, err := internalOrder(&o)
		if err != nil {
			return nil, err
		}
		if order.Status == trading.OrderStatusUnimplemented {
			logger.Warnf("order %s carries unmodelled status %q", o.ID, o.Status)
		}
		orders = append(orders, order)
	}
	return &trading.GetOrdersResponse{Orders: orders}, nil
}

// GetCash reports the account's cash balance exactly as Alpaca states it.
func (a *Adapter) GetCash(ctx context.Context) (*trading.GetCashResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acct, err := a.api.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("fetch account: %w", err)
	}
	return &trading.GetCashResponse{Cash: acct.Cash}, nil
}

// GetBuyingPower reports the account's buying power exactly as Alpaca
// states it.
//
// Deprecated: derive spending capacity from GetCash.
func (a *Adapter) GetBuyingPower(ctx context.Context) (*trading.GetBuyingPowerResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	acct, err := a.api.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("fetch account: %w", err)
	}
	return &trading.GetBuyingPowerResponse{BuyingPower: acct.BuyingPower}, nil
}

// GetOpenPosition reports the held position for symbol. Alpaca answering
// 404 means nothing is held; that surfaces as trading.ErrNoOpenPosition so
// callers can tell an empty book from a broken transport.
func (a *Adapter) GetOpenPosition(ctx context.Context, symbol string) (*trading.GetOpenPositionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pos, err := a.api.GetPosition(symbol)
	if err != nil {
		var apiErr *alpacaapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("position %s: %w", symbol, trading.ErrNoOpenPosition)
		}
		return nil, fmt.Errorf("fetch position %s: %w", symbol, err)
	}
	return &trading.GetOpenPositionResponse{Position: internalPosition(pos)}, nil
}

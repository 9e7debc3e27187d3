package trading

import "github.com/shopspring/decimal"

// OrderResponse carries the venue-assigned identifier of a freshly placed
// order.
type OrderResponse struct {
	OrderID string `json:"order_id"`
}

// GetOrdersResponse carries every order on the account, terminal states
// included, in the venue's reported order.
type GetOrdersResponse struct {
	Orders []Order `json:"orders"`
}

// GetCashResponse carries the account's cash balance.
type GetCashResponse struct {
	Cash decimal.Decimal `json:"cash"`
}

// GetBuyingPowerResponse carries the account's buying power. It leaves the
// contract together with Client.GetBuyingPower.
type GetBuyingPowerResponse struct {
	BuyingPower decimal.Decimal `json:"buying_power"`
}

// GetOpenPositionResponse carries the held position for one symbol.
type GetOpenPositionResponse struct {
	Position OpenPosition `json:"position"`
}

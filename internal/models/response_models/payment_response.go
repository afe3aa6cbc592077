package response_models

type CreditPackResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int64  `json:"credits"`
	PriceMinor int64  `json:"price_minor"`
	Currency   string `json:"currency"`
}

type CreateCheckoutResponse struct {
	OrderCode  int64  `json:"order_code"`
	Amount     int64  `json:"amount"`
	PaymentURL string `json:"payment_url"`
	Provider   string `json:"provider"`
}

type DashboardResponse struct {
	Credits           int64               `json:"credits"`
	CompletionPercent int                 `json:"completion_percent"`
	ZodiacSign        string              `json:"zodiac_sign"`
	RecentOrders      []OrderResponse     `json:"recent_orders"`
	RecentHoroscopes  []HoroscopeResponse `json:"recent_horoscopes"`
}

package response_models

type OrderResponse struct {
	ID             string `json:"id"`
	AstrologerID   string `json:"astrologer_id"`
	AstrologerName string `json:"astrologer_name"`
	Category       string `json:"category"`
	CategoryLabel  string `json:"category_label"`
	Status         string `json:"status"`
	StatusLabel    string `json:"status_label"`
	Cost           int64  `json:"cost"`
	Note           string `json:"note,omitempty"`
	CreatedAt      int64  `json:"created_at"`
	CompletedAt    *int64 `json:"completed_at,omitempty"`
	HoroscopeID    string `json:"horoscope_id,omitempty"`
}

type HoroscopeResponse struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	AstrologerName string `json:"astrologer_name"`
	Category       string `json:"category"`
	CategoryLabel  string `json:"category_label"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	ValidFrom      int64  `json:"valid_from"`
	ValidTo        *int64 `json:"valid_to,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

// History feed item kinds. The discriminant is decided at construction,
// never inferred from which pointer happens to be set.
const (
	HistoryKindOrder     = "order"
	HistoryKindHoroscope = "horoscope"
)

type HistoryItem struct {
	Kind      string             `json:"kind"`
	Timestamp int64              `json:"timestamp"`
	Order     *OrderResponse     `json:"order,omitempty"`
	Horoscope *HoroscopeResponse `json:"horoscope,omitempty"`
}

func NewOrderHistoryItem(order OrderResponse) HistoryItem {
	return HistoryItem{
		Kind:      HistoryKindOrder,
		Timestamp: order.CreatedAt,
		Order:     &order,
	}
}

func NewHoroscopeHistoryItem(horoscope HoroscopeResponse) HistoryItem {
	return HistoryItem{
		Kind:      HistoryKindHoroscope,
		Timestamp: horoscope.CreatedAt,
		Horoscope: &horoscope,
	}
}

// CreateOrderResponse returns the order id as the job handle for the
// queued generation run.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
}

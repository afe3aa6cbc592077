package request_models

type CreateOrderRequest struct {
	AstrologerID string `json:"astrologer_id" binding:"required,uuid4"`
	Category     string `json:"category" binding:"required,oneof=daily weekly monthly yearly lifetime"`
	Note         string `json:"note" binding:"max=500"`
}

// GenerationWebhookRequest is the body of both internal generation
// endpoints; the shared secret travels in the X-Webhook-Secret header.
type GenerationWebhookRequest struct {
	OrderID string `json:"order_id" binding:"required,uuid4"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

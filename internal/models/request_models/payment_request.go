package request_models

type CreateCheckoutRequest struct {
	PackCode string `json:"pack_code" binding:"required"`
}

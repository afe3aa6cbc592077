package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astroportal/internal/models/request_models"
	"astroportal/internal/services"
	"astroportal/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// ListPacks godoc
// @Summary List purchasable credit packs
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/packs [get]
func (p *PaymentController) ListPacks(c *gin.Context) {
	packs, err := p.paymentService.ListPacks(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packs, "Credit packs fetched successfully")
}

// CreateCheckout godoc
// @Summary Start a credit pack purchase
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkout, err := p.paymentService.CreateCheckout(c.Request.Context(), accountID, req.PackCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created successfully")
}

// HandleWebhook receives payment confirmations from the provider and
// delegates signature verification to the service.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"astroportal/internal/models/request_models"
	"astroportal/internal/services"
	"astroportal/pkg/queue"
	"astroportal/pkg/utils"
)

// GenerationController exposes the internal generation endpoints. Both
// sit behind the webhook-secret middleware; they exist so an external
// scheduler can drive or restart the pipeline.
type GenerationController struct {
	genService services.GenerationServiceInterface
	genQueue   queue.GenerationQueue
}

func NewGenerationController(
	genService services.GenerationServiceInterface,
	genQueue queue.GenerationQueue,
) *GenerationController {
	return &GenerationController{
		genService: genService,
		genQueue:   genQueue,
	}
}

// TriggerGeneration godoc
// @Summary Queue generation for a pending order
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body request_models.GenerationWebhookRequest true "Order reference"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /internal/generation/trigger [post]
func (g *GenerationController) TriggerGeneration(c *gin.Context) {
	orderID, ok := g.bindOrderID(c)
	if !ok {
		return
	}

	if err := g.genQueue.Enqueue(queue.GenerationJob{OrderID: orderID}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Generation queue is full")
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true, "job_id": orderID.String()}, "Generation queued")
}

// ProcessGeneration godoc
// @Summary Run the generation pipeline synchronously
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body request_models.GenerationWebhookRequest true "Order reference"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /internal/generation/process [post]
func (g *GenerationController) ProcessGeneration(c *gin.Context) {
	orderID, ok := g.bindOrderID(c)
	if !ok {
		return
	}

	err := g.genService.BeginGeneration(c.Request.Context(), orderID)
	switch {
	case err == nil:
		utils.RespondSuccess(c, gin.H{"success": true}, "Horoscope generated")
	case errors.Is(err, utils.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, "Order not found")
	case errors.Is(err, utils.ErrOrderNotPending):
		// no-op per the order lifecycle; the claim was lost or the
		// order was already handled
		utils.RespondSuccess(c, gin.H{"success": false}, "Order is not pending, nothing to do")
	default:
		utils.RespondError(c, http.StatusInternalServerError, "Generation failed")
	}
}

func (g *GenerationController) bindOrderID(c *gin.Context) (uuid.UUID, bool) {
	var req request_models.GenerationWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return uuid.Nil, false
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return uuid.Nil, false
	}
	return orderID, true
}

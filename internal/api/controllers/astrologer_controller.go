package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"astroportal/internal/models/request_models"
	"astroportal/internal/services"
	"astroportal/pkg/utils"
)

type AstrologerController struct {
	astrologerService services.AstrologerServiceInterface
}

func NewAstrologerController(astrologerService services.AstrologerServiceInterface) *AstrologerController {
	return &AstrologerController{astrologerService: astrologerService}
}

// ListAstrologers godoc
// @Summary List active astrologers
// @Tags Astrologers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /astrologers [get]
func (a *AstrologerController) ListAstrologers(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	astrologers, err := a.astrologerService.ListAstrologers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, astrologers, "Astrologers fetched successfully")
}

// GetAstrologerById godoc
// @Summary Get astrologer details
// @Tags Astrologers
// @Produce json
// @Param astrologerId path string true "Astrologer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /astrologers/{astrologerId} [get]
func (a *AstrologerController) GetAstrologerById(c *gin.Context) {
	id, err := uuid.Parse(c.Param("astrologerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid astrologer ID")
		return
	}

	astrologer, err := a.astrologerService.GetAstrologerById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, astrologer, "Astrologer fetched successfully")
}

// CreateReview godoc
// @Summary Review an astrologer
// @Tags Astrologers
// @Accept json
// @Produce json
// @Param astrologerId path string true "Astrologer ID"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /astrologers/{astrologerId}/reviews [post]
func (a *AstrologerController) CreateReview(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	astrologerID, err := uuid.Parse(c.Param("astrologerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid astrologer ID")
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.astrologerService.CreateReview(c.Request.Context(), astrologerID, accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review created successfully")
}

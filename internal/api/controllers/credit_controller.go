package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astroportal/internal/models/request_models"
	"astroportal/internal/services"
	"astroportal/pkg/utils"
)

type CreditController struct {
	creditService services.CreditServiceInterface
}

func NewCreditController(creditService services.CreditServiceInterface) *CreditController {
	return &CreditController{creditService: creditService}
}

// GetBalance godoc
// @Summary Get the caller's credit balance
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/balance [get]
func (cc *CreditController) GetBalance(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	balance, err := cc.creditService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, balance, "Balance fetched successfully")
}

// ListQuestions godoc
// @Summary List profile questions and their credit rewards
// @Tags Credits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/questions [get]
func (cc *CreditController) ListQuestions(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	questions, err := cc.creditService.ListQuestions(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Questions fetched successfully")
}

// AnswerQuestion godoc
// @Summary Answer a profile question for credits
// @Tags Credits
// @Accept json
// @Produce json
// @Param request body request_models.AnswerQuestionRequest true "Answer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits/questions/answer [post]
func (cc *CreditController) AnswerQuestion(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	var req request_models.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.creditService.AnswerQuestion(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Answer saved, credits granted")
}

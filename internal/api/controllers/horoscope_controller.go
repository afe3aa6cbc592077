package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"astroportal/internal/services"
	"astroportal/pkg/utils"
)

type HoroscopeController struct {
	horoscopeService services.HoroscopeServiceInterface
}

func NewHoroscopeController(horoscopeService services.HoroscopeServiceInterface) *HoroscopeController {
	return &HoroscopeController{horoscopeService: horoscopeService}
}

// ListHoroscopes godoc
// @Summary List the caller's horoscopes
// @Tags Horoscopes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /horoscopes [get]
func (h *HoroscopeController) ListHoroscopes(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	horoscopes, err := h.horoscopeService.ListHoroscopes(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, horoscopes, "Horoscopes fetched successfully")
}

// GetHoroscopeById godoc
// @Summary Get one of the caller's horoscopes
// @Tags Horoscopes
// @Produce json
// @Param horoscopeId path string true "Horoscope ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /horoscopes/{horoscopeId} [get]
func (h *HoroscopeController) GetHoroscopeById(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	horoscopeID, err := uuid.Parse(c.Param("horoscopeId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid horoscope ID")
		return
	}

	horoscope, err := h.horoscopeService.GetHoroscopeById(c.Request.Context(), accountID, horoscopeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, horoscope, "Horoscope fetched successfully")
}

// GetHoroscopeByOrderId godoc
// @Summary Get the horoscope produced for an order
// @Tags Horoscopes
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /horoscopes/by-order/{orderId} [get]
func (h *HoroscopeController) GetHoroscopeByOrderId(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	horoscope, err := h.horoscopeService.GetHoroscopeByOrderId(c.Request.Context(), accountID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, horoscope, "Horoscope fetched successfully")
}

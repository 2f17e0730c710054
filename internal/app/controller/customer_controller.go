package controller

import (
	"net/http"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customerService service.CustomerService
}

func NewCustomerController(customerService service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

func (ctrl *CustomerController) GetProfile(c *gin.Context) {
	profile, err := ctrl.customerService.GetProfile(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (ctrl *CustomerController) UpdateProfile(c *gin.Context) {
	var req model.CustomerProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	profile, err := ctrl.customerService.UpdateProfile(c.Param("email"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (ctrl *CustomerController) GetAddresses(c *gin.Context) {
	addresses, err := ctrl.customerService.GetAddresses(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// ReplaceAddresses swaps the customer's full address book for the list sent
func (ctrl *CustomerController) ReplaceAddresses(c *gin.Context) {
	var payload []model.CustomerAddressPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	addresses, err := ctrl.customerService.ReplaceAddresses(c.Param("email"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

package controller

import (
	"net/http"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	businessService service.BusinessService
}

func NewBusinessController(businessService service.BusinessService) *BusinessController {
	return &BusinessController{businessService: businessService}
}

// Register handles business onboarding (Google or email/password)
func (ctrl *BusinessController) Register(c *gin.Context) {
	var req model.BusinessRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	id, err := ctrl.businessService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business registered", "id": id})
}

// Login handles panel email/password login
func (ctrl *BusinessController) Login(c *gin.Context) {
	var req model.BusinessLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	profile, err := ctrl.businessService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ResetPassword is a dev convenience for local panel testing
func (ctrl *BusinessController) ResetPassword(c *gin.Context) {
	var req model.BusinessPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.businessService.ResetPassword(&req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (ctrl *BusinessController) GetBusiness(c *gin.Context) {
	profile, err := ctrl.businessService.GetByEmail(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (ctrl *BusinessController) UpdateProfile(c *gin.Context) {
	var req model.BusinessProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	profile, err := ctrl.businessService.UpdateProfile(c.Param("email"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateStatus flips the manual open/closed toggle
func (ctrl *BusinessController) UpdateStatus(c *gin.Context) {
	var req model.BusinessStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.businessService.UpdateOpenStatus(c.Param("email"), *req.IsOpen); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// ListByCategory is the customer-facing storefront list
func (ctrl *BusinessController) ListByCategory(c *gin.Context) {
	businesses, err := ctrl.businessService.ListByCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, businesses)
}

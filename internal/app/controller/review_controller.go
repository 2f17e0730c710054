package controller

import (
	"net/http"
	"strconv"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateOrderReview records the customer's review of a delivered order
func (ctrl *ReviewController) CreateOrderReview(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid order id")
		return
	}

	var req model.BusinessReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	review, err := ctrl.reviewService.CreateOrderReview(uint(orderID), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// GetBusinessReviews lists a business's reviews, newest first. The path
// parameter is the numeric business id.
func (ctrl *ReviewController) GetBusinessReviews(c *gin.Context) {
	businessID, err := strconv.ParseUint(c.Param("email"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid business id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	reviews, err := ctrl.reviewService.GetBusinessReviews(uint(businessID), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

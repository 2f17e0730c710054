package service

import (
	"errors"
	"math"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrOrderNotDelivered = errors.New("Order not delivered")
	ErrReviewForbidden   = errors.New("Not allowed to review")
	ErrRatingOutOfRange  = errors.New("Rating must be 1-5")
	ErrReviewExists      = errors.New("Review already exists")
)

const (
	reviewListDefaultLimit = 100
	reviewListMaxLimit     = 200
)

type ReviewService interface {
	CreateOrderReview(orderID uint, req *model.BusinessReviewCreateRequest) (*model.BusinessReview, error)
	GetBusinessReviews(businessID uint, limit int) ([]model.BusinessReview, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, orderRepo: orderRepo}
}

// CreateOrderReview admits at most one review per delivered order, by the
// order's own customer. Missing sub-ratings default to the overall rating;
// when any sub-rating was explicitly supplied the stored overall rating is
// recomputed as the rounded mean of the three axes. When none were supplied
// the caller's overall rating is stored verbatim; old panel builds depend on
// that.
func (s *reviewService) CreateOrderReview(orderID uint, req *model.BusinessReviewCreateRequest) (*model.BusinessReview, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(order.Status))
	if status != "teslim edildi" && status != "teslim" {
		return nil, ErrOrderNotDelivered
	}

	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if email != strings.ToLower(strings.TrimSpace(order.CustomerEmail)) {
		return nil, ErrReviewForbidden
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	subSupplied := req.SpeedRating != nil || req.ServiceRating != nil || req.TasteRating != nil
	speed := defaultRating(req.SpeedRating, req.Rating)
	service := defaultRating(req.ServiceRating, req.Rating)
	taste := defaultRating(req.TasteRating, req.Rating)
	for _, value := range []int{speed, service, taste} {
		if value < 1 || value > 5 {
			return nil, ErrRatingOutOfRange
		}
	}

	rating := req.Rating
	if subSupplied {
		rating = int(math.Round(float64(speed+service+taste) / 3.0))
	}

	exists, err := s.reviewRepo.ExistsForOrder(orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewExists
	}

	review := &model.BusinessReview{
		BusinessID:    order.BusinessID,
		OrderID:       order.ID,
		CustomerEmail: email,
		Rating:        rating,
		SpeedRating:   &speed,
		ServiceRating: &service,
		TasteRating:   &taste,
		Comment:       blankToNil(req.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetBusinessReviews(businessID uint, limit int) ([]model.BusinessReview, error) {
	if limit <= 0 {
		limit = reviewListDefaultLimit
	}
	if limit > reviewListMaxLimit {
		limit = reviewListMaxLimit
	}

	reviews, err := s.reviewRepo.FindByBusinessID(businessID, limit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []model.BusinessReview{}
	}
	return reviews, nil
}

func defaultRating(value *int, fallback int) int {
	if value != nil {
		return *value
	}
	return fallback
}

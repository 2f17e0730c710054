package service

import (
	"testing"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"github.com/eatyapp/eaty-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *gorm.DB, *model.Business, *model.Order) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	reviewService := NewReviewService(reviewRepo, orderRepo)

	business := &model.Business{
		Email:    "kebapci@example.com",
		Name:     "Kebapçı Mahmut",
		Category: model.CategoryFood,
	}
	require.NoError(t, testDB.Create(business).Error)

	order := &model.Order{
		BusinessID:      business.ID,
		CustomerEmail:   "musteri@example.com",
		CustomerAddress: "Moda Cad. 1",
		TotalPrice:      320,
		Status:          model.OrderStatusDelivered,
		Items:           []model.OrderItem{{ProductName: "Adana Kebap", Quantity: 1, Price: 320}},
	}
	require.NoError(t, testDB.Create(order).Error)

	return reviewService, testDB, business, order
}

func TestCreateOrderReview_OverallOnlyStoredVerbatim(t *testing.T) {
	reviewService, _, business, order := setupReviewServiceTest(t)

	review, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	require.NoError(t, err)

	assert.Equal(t, business.ID, review.BusinessID)
	assert.Equal(t, 4, review.Rating)
	// missing sub-ratings default to the overall rating
	require.NotNil(t, review.SpeedRating)
	require.NotNil(t, review.ServiceRating)
	require.NotNil(t, review.TasteRating)
	assert.Equal(t, 4, *review.SpeedRating)
	assert.Equal(t, 4, *review.ServiceRating)
	assert.Equal(t, 4, *review.TasteRating)
}

func TestCreateOrderReview_SubRatingsDeriveOverall(t *testing.T) {
	reviewService, _, _, order := setupReviewServiceTest(t)

	speed, svc, taste := 1, 5, 3
	review, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        5,
		SpeedRating:   &speed,
		ServiceRating: &svc,
		TasteRating:   &taste,
	})
	require.NoError(t, err)

	// (1+5+3)/3 rounds to 3, replacing the caller's overall rating
	assert.Equal(t, 3, review.Rating)
}

func TestCreateOrderReview_PartialSubRatingsDefaultIndividually(t *testing.T) {
	reviewService, _, _, order := setupReviewServiceTest(t)

	speed := 5
	review, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        2,
		SpeedRating:   &speed,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, *review.SpeedRating)
	assert.Equal(t, 2, *review.ServiceRating)
	assert.Equal(t, 2, *review.TasteRating)
	// (5+2+2)/3 = 3
	assert.Equal(t, 3, review.Rating)
}

func TestCreateOrderReview_SecondReviewConflicts(t *testing.T) {
	reviewService, _, _, order := setupReviewServiceTest(t)

	_, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	require.NoError(t, err)

	_, err = reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        5,
	})
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestCreateOrderReview_RequiresDeliveredOrder(t *testing.T) {
	reviewService, testDB, business, _ := setupReviewServiceTest(t)

	pending := &model.Order{
		BusinessID:      business.ID,
		CustomerEmail:   "musteri@example.com",
		CustomerAddress: "Moda Cad. 1",
		Status:          model.OrderStatusPending,
	}
	require.NoError(t, testDB.Create(pending).Error)

	_, err := reviewService.CreateOrderReview(pending.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	assert.ErrorIs(t, err, ErrOrderNotDelivered)
}

func TestCreateOrderReview_ShortDeliveredVariantAccepted(t *testing.T) {
	reviewService, testDB, business, _ := setupReviewServiceTest(t)

	delivered := &model.Order{
		BusinessID:      business.ID,
		CustomerEmail:   "musteri@example.com",
		CustomerAddress: "Moda Cad. 1",
		Status:          "Teslim",
	}
	require.NoError(t, testDB.Create(delivered).Error)

	_, err := reviewService.CreateOrderReview(delivered.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	require.NoError(t, err)
}

func TestCreateOrderReview_WrongCustomerForbidden(t *testing.T) {
	reviewService, _, _, order := setupReviewServiceTest(t)

	_, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "baskasi@example.com",
		Rating:        4,
	})
	assert.ErrorIs(t, err, ErrReviewForbidden)
}

func TestCreateOrderReview_RatingRange(t *testing.T) {
	reviewService, _, _, order := setupReviewServiceTest(t)

	_, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        0,
	})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	bad := 6
	_, err = reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
		SpeedRating:   &bad,
	})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}

func TestCreateOrderReview_UnknownOrder(t *testing.T) {
	reviewService, _, _, _ := setupReviewServiceTest(t)

	_, err := reviewService.CreateOrderReview(9999, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetBusinessReviews_NewestFirst(t *testing.T) {
	reviewService, testDB, business, order := setupReviewServiceTest(t)

	_, err := reviewService.CreateOrderReview(order.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        4,
	})
	require.NoError(t, err)

	second := &model.Order{
		BusinessID:      business.ID,
		CustomerEmail:   "musteri@example.com",
		CustomerAddress: "Moda Cad. 1",
		Status:          model.OrderStatusDelivered,
	}
	require.NoError(t, testDB.Create(second).Error)
	_, err = reviewService.CreateOrderReview(second.ID, &model.BusinessReviewCreateRequest{
		CustomerEmail: "musteri@example.com",
		Rating:        2,
	})
	require.NoError(t, err)

	reviews, err := reviewService.GetBusinessReviews(business.ID, 0)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = reviewService.GetBusinessReviews(business.ID, 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

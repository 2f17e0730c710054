package repository

import (
	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.BusinessReview) error
	ExistsForOrder(orderID uint) (bool, error)
	FindByBusinessID(businessID uint, limit int) ([]model.BusinessReview, error)
	ReviewedOrderIDs(orderIDs []uint) (map[uint]bool, error)
	RatingSummaries(businessIDs []uint) (map[uint]model.RatingSummary, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.BusinessReview) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.BusinessReview{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) FindByBusinessID(businessID uint, limit int) ([]model.BusinessReview, error) {
	var reviews []model.BusinessReview
	err := r.db.
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ReviewedOrderIDs(orderIDs []uint) (map[uint]bool, error) {
	reviewed := make(map[uint]bool, len(orderIDs))
	if len(orderIDs) == 0 {
		return reviewed, nil
	}

	var ids []uint
	err := r.db.Model(&model.BusinessReview{}).
		Where("order_id IN ?", orderIDs).
		Pluck("order_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		reviewed[id] = true
	}
	return reviewed, nil
}

type ratingRow struct {
	BusinessID uint
	Avg        float64
	Count      int
	SpeedAvg   float64
	ServiceAvg float64
	TasteAvg   float64
}

// RatingSummaries aggregates per-business rating averages in one grouped
// query. Null sub-ratings fall back to the legacy overall rating per row, so
// old single-score reviews still contribute to every axis. The overall
// average is the mean of the per-review axis means, not of the stored
// rating column: the stored rating is rounded to an integer, and averaging
// it would lose the fraction.
func (r *reviewRepository) RatingSummaries(businessIDs []uint) (map[uint]model.RatingSummary, error) {
	result := make(map[uint]model.RatingSummary, len(businessIDs))
	if len(businessIDs) == 0 {
		return result, nil
	}

	var rows []ratingRow
	err := r.db.Model(&model.BusinessReview{}).
		Select(`business_id,
			AVG((COALESCE(speed_rating, rating) + COALESCE(service_rating, rating) + COALESCE(taste_rating, rating)) / 3.0) AS avg,
			COUNT(*) AS count,
			AVG(COALESCE(speed_rating, rating)) AS speed_avg,
			AVG(COALESCE(service_rating, rating)) AS service_avg,
			AVG(COALESCE(taste_rating, rating)) AS taste_avg`).
		Where("business_id IN ?", businessIDs).
		Group("business_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		avg, speed, service, taste := row.Avg, row.SpeedAvg, row.ServiceAvg, row.TasteAvg
		result[row.BusinessID] = model.RatingSummary{
			Avg:        &avg,
			Count:      row.Count,
			SpeedAvg:   &speed,
			ServiceAvg: &service,
			TasteAvg:   &taste,
		}
	}
	return result, nil
}

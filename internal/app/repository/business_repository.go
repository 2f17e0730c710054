package repository

import (
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *model.Business) error
	FindByID(id uint) (*model.Business, error)
	FindByIDs(ids []uint) (map[uint]model.Business, error)
	FindByEmail(email string) (*model.Business, error)
	FindByCategory(category model.BusinessCategory) ([]model.Business, error)
	Update(business *model.Business) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(business *model.Business) error {
	return r.db.Create(business).Error
}

func (r *businessRepository) FindByID(id uint) (*model.Business, error) {
	var business model.Business
	if err := r.db.First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByIDs(ids []uint) (map[uint]model.Business, error) {
	result := make(map[uint]model.Business, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var businesses []model.Business
	if err := r.db.Where("id IN ?", ids).Find(&businesses).Error; err != nil {
		return nil, err
	}
	for _, business := range businesses {
		result[business.ID] = business
	}
	return result, nil
}

// FindByEmail looks a business up case-insensitively. Emails are stored
// lowercase, but legacy rows predate the normalization.
func (r *businessRepository) FindByEmail(email string) (*model.Business, error) {
	var business model.Business
	err := r.db.
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByCategory(category model.BusinessCategory) ([]model.Business, error) {
	var businesses []model.Business
	if err := r.db.Where("category = ?", category).Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *businessRepository) Update(business *model.Business) error {
	return r.db.Save(business).Error
}

package repository

import (
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindProfile(email string) (*model.CustomerProfile, error)
	SaveProfile(profile *model.CustomerProfile) error
	FindAddresses(email string) ([]model.CustomerAddress, error)
	ReplaceAddresses(email string, addresses []model.CustomerAddress) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindProfile(email string) (*model.CustomerProfile, error) {
	var profile model.CustomerProfile
	err := r.db.
		Where("email = ?", normalizeEmail(email)).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *customerRepository) SaveProfile(profile *model.CustomerProfile) error {
	return r.db.Save(profile).Error
}

func (r *customerRepository) FindAddresses(email string) ([]model.CustomerAddress, error) {
	var addresses []model.CustomerAddress
	err := r.db.
		Where("email = ?", normalizeEmail(email)).
		Order("sequence ASC, id ASC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// ReplaceAddresses swaps the customer's whole address book in one
// transaction. The caller owns ordering via the Sequence field.
func (r *customerRepository) ReplaceAddresses(email string, addresses []model.CustomerAddress) error {
	normalized := normalizeEmail(email)
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", normalized).Delete(&model.CustomerAddress{}).Error; err != nil {
			return err
		}
		if len(addresses) == 0 {
			return nil
		}
		for i := range addresses {
			addresses[i].Email = normalized
		}
		return tx.Create(&addresses).Error
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package service

import (
	"errors"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired   = errors.New("Email is required")
	ErrProfileNotFound = errors.New("Profile not found")
	ErrNameRequired    = errors.New("Name is required")
)

type CustomerService interface {
	GetProfile(email string) (*model.CustomerProfileResponse, error)
	UpdateProfile(email string, req *model.CustomerProfileUpdateRequest) (*model.CustomerProfileResponse, error)
	GetAddresses(email string) ([]model.CustomerAddressPayload, error)
	ReplaceAddresses(email string, payload []model.CustomerAddressPayload) ([]model.CustomerAddressPayload, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetProfile(email string) (*model.CustomerProfileResponse, error) {
	normalized, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	profile, err := s.customerRepo.FindProfile(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile creates the profile on first save; a first save without a
// name is rejected. An explicit empty string clears a field, absence leaves
// it untouched.
func (s *customerService) UpdateProfile(email string, req *model.CustomerProfileUpdateRequest) (*model.CustomerProfileResponse, error) {
	normalized, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	profile, err := s.customerRepo.FindProfile(normalized)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if profile == nil {
		name := trimmedOrNil(req.Name)
		if name == nil {
			return nil, ErrNameRequired
		}
		profile = &model.CustomerProfile{
			Email: normalized,
			Name:  name,
			Phone: trimmedOrNil(req.Phone),
		}
	} else {
		if req.Name != nil {
			profile.Name = trimmedOrNil(req.Name)
		}
		if req.Phone != nil {
			profile.Phone = trimmedOrNil(req.Phone)
		}
	}

	if err := s.customerRepo.SaveProfile(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func (s *customerService) GetAddresses(email string) ([]model.CustomerAddressPayload, error) {
	normalized, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	addresses, err := s.customerRepo.FindAddresses(normalized)
	if err != nil {
		return nil, err
	}

	result := make([]model.CustomerAddressPayload, 0, len(addresses))
	for i := range addresses {
		result = append(result, toAddressPayload(&addresses[i]))
	}
	return result, nil
}

// ReplaceAddresses swaps the customer's full address list for the one sent.
// Entries without an id are dropped; order in the payload becomes display
// order.
func (s *customerService) ReplaceAddresses(email string, payload []model.CustomerAddressPayload) ([]model.CustomerAddressPayload, error) {
	normalized, err := requireEmail(email)
	if err != nil {
		return nil, err
	}

	rows := make([]model.CustomerAddress, 0, len(payload))
	for _, address := range payload {
		addressID := strings.TrimSpace(address.ID)
		if addressID == "" {
			continue
		}
		rows = append(rows, model.CustomerAddress{
			Email:        normalized,
			AddressID:    addressID,
			Label:        strings.TrimSpace(address.Label),
			AddressLine:  strings.TrimSpace(address.AddressLine),
			Neighborhood: strings.TrimSpace(address.Neighborhood),
			District:     strings.TrimSpace(address.District),
			City:         strings.TrimSpace(address.City),
			Note:         trimmedOrNil(address.Note),
			Phone:        trimmedOrNil(address.Phone),
			Latitude:     address.Latitude,
			Longitude:    address.Longitude,
			Sequence:     len(rows),
		})
	}

	if err := s.customerRepo.ReplaceAddresses(normalized, rows); err != nil {
		return nil, err
	}

	result := make([]model.CustomerAddressPayload, 0, len(rows))
	for i := range rows {
		result = append(result, toAddressPayload(&rows[i]))
	}
	return result, nil
}

func requireEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrEmailRequired
	}
	return normalized, nil
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toProfileResponse(profile *model.CustomerProfile) *model.CustomerProfileResponse {
	return &model.CustomerProfileResponse{
		Email: profile.Email,
		Name:  profile.Name,
		Phone: profile.Phone,
	}
}

func toAddressPayload(address *model.CustomerAddress) model.CustomerAddressPayload {
	return model.CustomerAddressPayload{
		ID:           address.AddressID,
		Label:        address.Label,
		AddressLine:  address.AddressLine,
		Neighborhood: address.Neighborhood,
		District:     address.District,
		City:         address.City,
		Note:         address.Note,
		Phone:        address.Phone,
		Latitude:     address.Latitude,
		Longitude:    address.Longitude,
	}
}

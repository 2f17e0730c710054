package service

import (
	"errors"
	"strings"
	"time"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"github.com/eatyapp/eaty-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound         = errors.New("Business not found")
	ErrEmailAlreadyRegistered   = errors.New("Email already registered")
	ErrInvalidRegisterCategory  = errors.New("Invalid category (food/market)")
	ErrInvalidCategory          = errors.New("Invalid category")
	ErrBusinessNameRequired     = errors.New("Business name is required")
	ErrPasswordTooShort         = errors.New("Password must be at least 6 characters")
	ErrPasswordLoginUnavailable = errors.New("This business has no password login (use Google)")
	ErrInvalidCredentials       = errors.New("Invalid email or password")
)

type BusinessService interface {
	Register(req *model.BusinessRegisterRequest) (uint, error)
	Login(req *model.BusinessLoginRequest) (*model.BusinessProfile, error)
	ResetPassword(req *model.BusinessPasswordResetRequest) error
	GetByEmail(email string) (*model.BusinessProfile, error)
	UpdateProfile(email string, req *model.BusinessProfileUpdateRequest) (*model.BusinessProfile, error)
	UpdateOpenStatus(email string, isOpen bool) error
	ListByCategory(category string) ([]model.BusinessPublic, error)
}

type businessService struct {
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
}

func NewBusinessService(businessRepo repository.BusinessRepository, reviewRepo repository.ReviewRepository) BusinessService {
	return &businessService{businessRepo: businessRepo, reviewRepo: reviewRepo}
}

func (s *businessService) Register(req *model.BusinessRegisterRequest) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.businessRepo.FindByEmail(email); err == nil {
		return 0, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if !model.ValidBusinessCategory(req.Category) {
		return 0, ErrInvalidRegisterCategory
	}

	// The onboarding form fills different name fields depending on the flow
	displayName := firstNonEmpty(req.Name, req.RestaurantName, req.CompanyName)
	if displayName == "" {
		return 0, ErrBusinessNameRequired
	}

	address := req.Address
	if address == nil || strings.TrimSpace(*address) == "" {
		if composed := composeAddress(req.OpenAddress, req.Neighborhood, req.District, req.City); composed != "" {
			address = &composed
		} else {
			address = nil
		}
	}

	var passwordHash *string
	if req.Password != nil {
		password := strings.TrimSpace(*req.Password)
		if len(password) < 6 {
			return 0, ErrPasswordTooShort
		}
		hash, err := util.HashPassword(password)
		if err != nil {
			return 0, err
		}
		passwordHash = &hash
	}

	business := &model.Business{
		Email:             email,
		Name:              displayName,
		Phone:             req.Phone,
		Address:           address,
		Category:          model.BusinessCategory(req.Category),
		PhotoURL:          req.PhotoURL,
		MinOrderAmount:    req.MinOrderAmount,
		DeliveryTimeMins:  req.DeliveryTimeMins,
		DeliveryRadiusKm:  req.DeliveryRadiusKm,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		WorkingHours:      req.WorkingHours,
		AuthorizedName:    req.AuthorizedName,
		AuthorizedSurname: req.AuthorizedSurname,
		CompanyName:       req.CompanyName,
		TCKN:              req.TCKN,
		RestaurantName:    req.RestaurantName,
		KitchenType:       req.KitchenType,
		City:              req.City,
		District:          req.District,
		Neighborhood:      req.Neighborhood,
		OpenAddress:       req.OpenAddress,
		PasswordHash:      passwordHash,
	}

	if err := s.businessRepo.Create(business); err != nil {
		return 0, err
	}
	return business.ID, nil
}

func (s *businessService) Login(req *model.BusinessLoginRequest) (*model.BusinessProfile, error) {
	business, err := s.businessRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	if business.PasswordHash == nil {
		return nil, ErrPasswordLoginUnavailable
	}
	if !util.VerifyPassword(*business.PasswordHash, strings.TrimSpace(req.Password)) {
		return nil, ErrInvalidCredentials
	}

	return s.toProfile(business, nil, time.Now()), nil
}

func (s *businessService) ResetPassword(req *model.BusinessPasswordResetRequest) error {
	business, err := s.businessRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBusinessNotFound
		}
		return err
	}

	password := strings.TrimSpace(req.Password)
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}
	business.PasswordHash = &hash
	return s.businessRepo.Update(business)
}

func (s *businessService) GetByEmail(email string) (*model.BusinessProfile, error) {
	business, err := s.businessRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	summaries, err := s.reviewRepo.RatingSummaries([]uint{business.ID})
	if err != nil {
		return nil, err
	}
	summary := summaries[business.ID]
	return s.toProfile(business, &summary, time.Now()), nil
}

func (s *businessService) UpdateProfile(email string, req *model.BusinessProfileUpdateRequest) (*model.BusinessProfile, error) {
	business, err := s.businessRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	if req.Address != nil {
		business.Address = req.Address
	}
	if req.Phone != nil {
		business.Phone = req.Phone
	}
	if req.PhotoURL != nil {
		business.PhotoURL = req.PhotoURL
	}
	if req.MinOrderAmount != nil {
		business.MinOrderAmount = req.MinOrderAmount
	}
	if req.DeliveryTimeMins != nil {
		business.DeliveryTimeMins = req.DeliveryTimeMins
	}
	if req.DeliveryRadiusKm != nil {
		business.DeliveryRadiusKm = req.DeliveryRadiusKm
	}
	if req.Latitude != nil {
		business.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		business.Longitude = req.Longitude
	}
	if req.WorkingHours != nil {
		business.WorkingHours = req.WorkingHours
	}

	if err := s.businessRepo.Update(business); err != nil {
		return nil, err
	}
	return s.toProfile(business, nil, time.Now()), nil
}

func (s *businessService) UpdateOpenStatus(email string, isOpen bool) error {
	business, err := s.businessRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBusinessNotFound
		}
		return err
	}

	business.IsOpen = &isOpen
	return s.businessRepo.Update(business)
}

// ListByCategory returns the storefront list with effective open state and
// rating projections attached.
func (s *businessService) ListByCategory(category string) ([]model.BusinessPublic, error) {
	if !model.ValidBusinessCategory(category) {
		return nil, ErrInvalidCategory
	}

	businesses, err := s.businessRepo.FindByCategory(model.BusinessCategory(category))
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(businesses))
	for _, business := range businesses {
		ids = append(ids, business.ID)
	}
	summaries, err := s.reviewRepo.RatingSummaries(ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]model.BusinessPublic, 0, len(businesses))
	for i := range businesses {
		summary := summaries[businesses[i].ID]
		result = append(result, s.toPublic(&businesses[i], &summary, now))
	}
	return result, nil
}

func (s *businessService) toPublic(business *model.Business, summary *model.RatingSummary, now time.Time) model.BusinessPublic {
	public := model.BusinessPublic{
		ID:               business.ID,
		Email:            business.Email,
		Name:             business.Name,
		Phone:            business.Phone,
		Address:          business.Address,
		Category:         business.Category,
		PhotoURL:         business.PhotoURL,
		MinOrderAmount:   business.MinOrderAmount,
		DeliveryTimeMins: business.DeliveryTimeMins,
		DeliveryRadiusKm: business.DeliveryRadiusKm,
		Latitude:         business.Latitude,
		Longitude:        business.Longitude,
		IsOpen:           ResolveOpenStatus(business.IsOpen, business.WorkingHours, now),
	}
	if summary != nil {
		public.RatingAvg = summary.Avg
		public.RatingSpeedAvg = summary.SpeedAvg
		public.RatingServiceAvg = summary.ServiceAvg
		public.RatingTasteAvg = summary.TasteAvg
		count := summary.Count
		public.RatingCount = &count
	}
	return public
}

func (s *businessService) toProfile(business *model.Business, summary *model.RatingSummary, now time.Time) *model.BusinessProfile {
	return &model.BusinessProfile{
		BusinessPublic:    s.toPublic(business, summary, now),
		WorkingHours:      business.WorkingHours,
		AuthorizedName:    business.AuthorizedName,
		AuthorizedSurname: business.AuthorizedSurname,
		CompanyName:       business.CompanyName,
		TCKN:              business.TCKN,
		RestaurantName:    business.RestaurantName,
		KitchenType:       business.KitchenType,
		City:              business.City,
		District:          business.District,
		Neighborhood:      business.Neighborhood,
		OpenAddress:       business.OpenAddress,
	}
}

func firstNonEmpty(values ...*string) string {
	for _, value := range values {
		if value != nil && strings.TrimSpace(*value) != "" {
			return *value
		}
	}
	return ""
}

func composeAddress(parts ...*string) string {
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != nil && strings.TrimSpace(*part) != "" {
			joined = append(joined, strings.TrimSpace(*part))
		}
	}
	return strings.Join(joined, ", ")
}

package service

import (
	"errors"
	"strings"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/repository"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("Order not found")

type OrderService interface {
	PlaceOrder(req *model.OrderCreateRequest) (uint, error)
	GetBusinessOrders(businessEmail string) ([]model.BusinessOrderResponse, error)
	GetCustomerOrders(customerEmail string) ([]model.CustomerOrderResponse, error)
	UpdateStatus(orderID uint, req *model.OrderStatusUpdateRequest) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	businessRepo repository.BusinessRepository
	reviewRepo   repository.ReviewRepository
}

func NewOrderService(orderRepo repository.OrderRepository, businessRepo repository.BusinessRepository, reviewRepo repository.ReviewRepository) OrderService {
	return &orderService{orderRepo: orderRepo, businessRepo: businessRepo, reviewRepo: reviewRepo}
}

// PlaceOrder inserts the order with its snapshot items atomically. The total
// price is stored as the caller sent it, never recomputed from the items.
func (s *orderService) PlaceOrder(req *model.OrderCreateRequest) (uint, error) {
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	order := &model.Order{
		BusinessID:      req.BusinessID,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    blankToNil(req.CustomerName),
		CustomerPhone:   blankToNil(req.CustomerPhone),
		CustomerAddress: req.CustomerAddress,
		CustomerNote:    blankToNil(req.CustomerNote),
		TotalPrice:      req.TotalPrice,
		Status:          model.OrderStatusPending,
		Items:           items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// GetBusinessOrders returns the panel order list, newest first. An unknown
// business email yields an empty list rather than 404; the panel polls this
// before registration completes.
func (s *orderService) GetBusinessOrders(businessEmail string) ([]model.BusinessOrderResponse, error) {
	business, err := s.businessRepo.FindByEmail(businessEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.BusinessOrderResponse{}, nil
		}
		return nil, err
	}

	orders, err := s.orderRepo.FindByBusinessID(business.ID)
	if err != nil {
		return nil, err
	}

	result := make([]model.BusinessOrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, model.BusinessOrderResponse{
			ID:              order.ID,
			CustomerName:    order.CustomerName,
			CustomerPhone:   order.CustomerPhone,
			CustomerAddress: order.CustomerAddress,
			CustomerNote:    order.CustomerNote,
			TotalPrice:      order.TotalPrice,
			Status:          order.Status,
			RejectionReason: order.RejectionReason,
			CreatedAt:       order.CreatedAt,
			Items:           order.Items,
		})
	}
	return result, nil
}

// GetCustomerOrders returns the customer's order history with joined
// business fields and a reviewed flag per order.
func (s *orderService) GetCustomerOrders(customerEmail string) ([]model.CustomerOrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomerEmail(customerEmail)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uint, 0, len(orders))
	businessIDs := make([]uint, 0, len(orders))
	seen := make(map[uint]bool)
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
		if !seen[order.BusinessID] {
			seen[order.BusinessID] = true
			businessIDs = append(businessIDs, order.BusinessID)
		}
	}

	reviewed, err := s.reviewRepo.ReviewedOrderIDs(orderIDs)
	if err != nil {
		return nil, err
	}
	businesses, err := s.businessRepo.FindByIDs(businessIDs)
	if err != nil {
		return nil, err
	}

	result := make([]model.CustomerOrderResponse, 0, len(orders))
	for _, order := range orders {
		response := model.CustomerOrderResponse{
			ID:              order.ID,
			BusinessID:      order.BusinessID,
			Status:          order.Status,
			TotalPrice:      order.TotalPrice,
			CustomerAddress: order.CustomerAddress,
			CreatedAt:       order.CreatedAt,
			Items:           order.Items,
			Reviewed:        reviewed[order.ID],
		}
		if business, ok := businesses[order.BusinessID]; ok {
			response.BusinessName = business.Name
			email := business.Email
			response.BusinessEmail = &email
			response.BusinessPhotoURL = business.PhotoURL
			response.BusinessAddress = business.Address
			response.BusinessCategory = business.Category
		} else {
			// the business was deleted after the order; keep history readable
			response.BusinessName = "İşletme"
			response.BusinessCategory = model.CategoryFood
		}
		result = append(result, response)
	}
	return result, nil
}

func (s *orderService) UpdateStatus(orderID uint, req *model.OrderStatusUpdateRequest) error {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	reason := order.RejectionReason
	if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
		reason = req.Reason
	}
	return s.orderRepo.UpdateStatus(orderID, req.Status, reason)
}

func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/newbienorbie/prostore/models"
	"github.com/newbienorbie/prostore/repositories"
)

const OrderPageSize = 10

// PayPalClient is the slice of the hosted payment API the order flow needs.
type PayPalClient interface {
	CreateOrder(ctx context.Context, amount string) (string, error)
	CaptureOrder(ctx context.Context, paypalOrderID string) (*models.PaymentResult, error)
}

// ReceiptSender delivers the purchase receipt email.
type ReceiptSender interface {
	SendPurchaseReceipt(order *models.Order) error
}

type OrderService struct {
	orders repositories.OrderStore
	carts  repositories.CartStore
	users  repositories.UserStore
	paypal PayPalClient
	mailer ReceiptSender
}

func NewOrderService(orders repositories.OrderStore, carts repositories.CartStore, users repositories.UserStore, paypal PayPalClient, mailer ReceiptSender) *OrderService {
	return &OrderService{orders: orders, carts: carts, users: users, paypal: paypal, mailer: mailer}
}

// PlaceOrder turns the user's cart into an order: address and payment method
// come from the user record, prices from the cart, stock is decremented and
// the cart emptied transactionally.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string) (*models.Order, *models.Response) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, &models.Response{Success: false, Message: "User not found"}
	}
	if user.Address == nil {
		return nil, &models.Response{Success: false, Message: "No shipping address"}
	}
	if user.PaymentMethod == "" {
		return nil, &models.Response{Success: false, Message: "No payment method"}
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil || len(cart.Items) == 0 {
		return nil, &models.Response{Success: false, Message: "Your cart is empty"}
	}

	order := &models.Order{
		UserID:        userID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		Address:       *user.Address,
		PaymentMethod: user.PaymentMethod,
		ItemsPrice:    cart.ItemsPrice,
		ShippingPrice: cart.ShippingPrice,
		TaxPrice:      cart.TaxPrice,
		TotalPrice:    cart.TotalPrice,
	}

	if err := s.orders.CreateFromCart(ctx, order, cart); err != nil {
		switch {
		case errors.Is(err, models.ErrOutOfStock):
			return nil, &models.Response{Success: false, Message: err.Error()}
		case errors.Is(err, models.ErrProductNotFound):
			return nil, &models.Response{Success: false, Message: err.Error()}
		default:
			log.Printf("failed to place order for user %s: %v", userID, err)
			return nil, &models.Response{Success: false, Message: "Failed to place order"}
		}
	}

	return order, nil
}

// GetOrder returns the order when the requester owns it or is an admin.
func (s *OrderService) GetOrder(ctx context.Context, orderID, requesterID, requesterRole string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && requesterRole != "admin" {
		return nil, models.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, userID string, page int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	orders, total, err := s.orders.ListByUser(ctx, userID, page, OrderPageSize)
	if err != nil {
		return nil, err
	}
	return s.paginated(orders, page, total), nil
}

func (s *OrderService) GetAllOrders(ctx context.Context, page int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	orders, total, err := s.orders.List(ctx, page, OrderPageSize)
	if err != nil {
		return nil, err
	}
	return s.paginated(orders, page, total), nil
}

// CreatePayPalOrder opens a PayPal order for the total and records its id on
// the order's payment result.
func (s *OrderService) CreatePayPalOrder(ctx context.Context, orderID, requesterID, requesterRole string) (string, error) {
	order, err := s.GetOrder(ctx, orderID, requesterID, requesterRole)
	if err != nil {
		return "", err
	}
	if order.IsPaid {
		return "", errors.New("order is already paid")
	}

	paypalOrderID, err := s.paypal.CreateOrder(ctx, order.TotalPrice)
	if err != nil {
		return "", fmt.Errorf("failed to create PayPal order: %w", err)
	}

	result := &models.PaymentResult{ID: paypalOrderID, Status: "", EmailAddress: "", PricePaid: "0"}
	if err := s.orders.SetPaymentResult(ctx, order.ID, result); err != nil {
		return "", err
	}
	return paypalOrderID, nil
}

// CapturePayPalOrder captures the approved PayPal order, marks the order paid
// and mails the receipt. A failed receipt email never fails the capture.
func (s *OrderService) CapturePayPalOrder(ctx context.Context, orderID, paypalOrderID, requesterID, requesterRole string) error {
	order, err := s.GetOrder(ctx, orderID, requesterID, requesterRole)
	if err != nil {
		return err
	}
	if order.IsPaid {
		return errors.New("order is already paid")
	}
	if order.PaymentResult == nil || order.PaymentResult.ID != paypalOrderID {
		return errors.New("payment does not match this order")
	}

	result, err := s.paypal.CaptureOrder(ctx, paypalOrderID)
	if err != nil {
		return fmt.Errorf("failed to capture PayPal order: %w", err)
	}
	if result.Status != "COMPLETED" {
		return fmt.Errorf("payment not completed: %s", result.Status)
	}

	if err := s.orders.MarkPaid(ctx, order.ID, result); err != nil {
		return err
	}

	s.sendReceipt(ctx, order.ID)
	return nil
}

// MarkPaid is the manual path for cash-on-delivery style methods (admin only).
func (s *OrderService) MarkPaid(ctx context.Context, orderID string) error {
	if err := s.orders.MarkPaid(ctx, orderID, nil); err != nil {
		return err
	}
	s.sendReceipt(ctx, orderID)
	return nil
}

func (s *OrderService) MarkDelivered(ctx context.Context, orderID string) error {
	return s.orders.MarkDelivered(ctx, orderID)
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.orders.Delete(ctx, orderID)
}

func (s *OrderService) GetSummary(ctx context.Context) (*models.SalesSummary, error) {
	return s.orders.Summary(ctx)
}

func (s *OrderService) sendReceipt(ctx context.Context, orderID string) {
	if s.mailer == nil {
		return
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		log.Printf("failed to load order %s for receipt: %v", orderID, err)
		return
	}
	if err := s.mailer.SendPurchaseReceipt(order); err != nil {
		log.Printf("failed to send receipt for order %s: %v", orderID, err)
	}
}

func (s *OrderService) paginated(orders []models.Order, page, total int) *models.PaginatedResponse {
	return &models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      OrderPageSize,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(OrderPageSize))),
		},
	}
}

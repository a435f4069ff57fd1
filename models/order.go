package models

import "time"

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name,omitempty"`
	UserEmail     string          `json:"user_email,omitempty"`
	Address       ShippingAddress `json:"shipping_address"`
	PaymentMethod string          `json:"payment_method"`
	PaymentResult *PaymentResult  `json:"payment_result,omitempty"`
	Items         []OrderItem     `json:"items,omitempty"`
	ItemsPrice    string          `json:"items_price"`
	ShippingPrice string          `json:"shipping_price"`
	TaxPrice      string          `json:"tax_price"`
	TotalPrice    string          `json:"total_price"`
	IsPaid        bool            `json:"is_paid"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	IsDelivered   bool            `json:"is_delivered"`
	DeliveredAt   *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Qty       int    `json:"qty"`
}

// PaymentResult mirrors the capture payload stored on a paid order.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
	PricePaid    string `json:"price_paid"`
}

type SalesSummary struct {
	OrdersCount   int            `json:"orders_count"`
	ProductsCount int            `json:"products_count"`
	UsersCount    int            `json:"users_count"`
	TotalSales    string         `json:"total_sales"`
	MonthlySales  []MonthlySales `json:"monthly_sales"`
	LatestOrders  []Order        `json:"latest_orders"`
}

type MonthlySales struct {
	Month      string `json:"month"`
	TotalSales string `json:"total_sales"`
}

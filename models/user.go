package models

import "time"

type User struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Password      string           `json:"-"`
	Role          string           `json:"role"`
	Address       *ShippingAddress `json:"address,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ShippingAddress struct {
	FullName      string   `json:"full_name" binding:"required,min=3"`
	StreetAddress string   `json:"street_address" binding:"required,min=3"`
	City          string   `json:"city" binding:"required,min=3"`
	State         string   `json:"state" binding:"required,min=3"`
	PostalCode    string   `json:"postal_code" binding:"required,min=3"`
	Country       string   `json:"country" binding:"required,min=3"`
	Lat           *float64 `json:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty"`
}

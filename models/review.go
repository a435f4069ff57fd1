package models

import "time"

type Review struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	ProductID   string    `json:"product_id"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

type SignUpRequest struct {
	Name            string `json:"name" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,min=6,eqfield=Password"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=3"`
}

type PaymentMethodRequest struct {
	Type string `json:"type" binding:"required"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,min=3"`
	Slug        string   `json:"slug" binding:"required,min=3"`
	Category    string   `json:"category" binding:"required,min=3"`
	Brand       string   `json:"brand" binding:"required,min=3"`
	Description string   `json:"description" binding:"required,min=3"`
	Images      []string `json:"images" binding:"required,min=1"`
	Price       string   `json:"price" binding:"required"`
	Stock       int      `json:"stock" binding:"min=0"`
	IsFeatured  bool     `json:"is_featured"`
	Banner      *string  `json:"banner"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Price       string   `json:"price"`
	Stock       *int     `json:"stock"`
	IsFeatured  *bool    `json:"is_featured"`
	Banner      *string  `json:"banner"`
}

type UpdateUserRequest struct {
	Name string `json:"name" binding:"required,min=3"`
	Role string `json:"role" binding:"required,oneof=user admin"`
}

type CreateReviewRequest struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3"`
}

type CapturePayPalRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// ProductQuery carries the catalog search filters. Zero values mean "no filter".
type ProductQuery struct {
	Query    string
	Category string
	Price    string
	Rating   string
	Sort     string
	Page     int
	Limit    int
}

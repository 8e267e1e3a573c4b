package domain

// Request and response payloads exchanged between handlers and services.
// Handlers run struct validation; services enforce the business rules the
// tags cannot express.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=6"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Bio         string `json:"bio"`
	Address     string `json:"address" validate:"max=200"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
}

type CreateFoodItemRequest struct {
	FoodType   string  `json:"food_type" validate:"required,max=100"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
	Location   string  `json:"location" validate:"required,max=100"`
	CategoryID uint    `json:"category_id" validate:"required"`
	ExpiryDate string  `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateFoodItemRequest uses pointers so absent fields are left unchanged;
// a zero price is a meaningful value here (free food).
type UpdateFoodItemRequest struct {
	FoodType   string   `json:"food_type" validate:"omitempty,max=100"`
	Quantity   *int     `json:"quantity" validate:"omitempty,gt=0"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	Location   string   `json:"location" validate:"omitempty,max=100"`
	ExpiryDate string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type RateUserRequest struct {
	Rating     int    `json:"rating" validate:"required"`
	Review     string `json:"review"`
	FoodItemID *uint  `json:"food_item_id"`
}

type FeedbackRequest struct {
	Message string `json:"message" validate:"required"`
}

type AnalyticsResponse struct {
	TotalFoodDonated int64 `json:"total_food_donated"`
	UsersHelped      int64 `json:"users_helped"`
}

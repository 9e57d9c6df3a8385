package request

// CreateCashierRequest represents a cashier creation request
type CreateCashierRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Login    string  `json:"login" binding:"required,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"omitempty,min=6"`
}

// UpdateCashierRequest represents a cashier profile update request
type UpdateCashierRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=255"`
	Login *string `json:"login" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// SetCashierPasswordRequest represents a password assignment request
type SetCashierPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

package request_models

// Auth requests bind from a JSON body or, as the original web client sends
// them, from query/form parameters.

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Location string `json:"location" form:"location"`
	Password string `json:"password" form:"password" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" form:"name" binding:"omitempty,max=100"`
	Location string `json:"location" form:"location"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id" form:"session_id" binding:"required"`
}

package response_models

type UserProfile struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Initials string `json:"initials"`
	Location string `json:"location,omitempty"`
}

type UserResponse struct {
	ID      string      `json:"id"`
	Profile UserProfile `json:"profile"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
	SessionID   string       `json:"session_id"`
}

type ProfileResponse struct {
	User      UserResponse `json:"user"`
	CreatedAt string       `json:"created_at"`
	LastLogin string       `json:"last_login,omitempty"`
}

type TokenVerificationResponse struct {
	Valid bool          `json:"valid"`
	User  *UserResponse `json:"user,omitempty"`
	Error string        `json:"error,omitempty"`
}

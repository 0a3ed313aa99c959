package db_models

import (
	"strings"
	"time"
)

type UserProfile struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	Initials string `json:"initials"`
	Location string `json:"location,omitempty"`
}

type User struct {
	BaseModel
	Email        string      `json:"email"`
	PasswordHash string      `json:"password_hash,omitempty"`
	Profile      UserProfile `json:"profile"`
	LastLogin    *time.Time  `json:"last_login,omitempty"`
}

// Initials takes the first letter of up to two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return b.String()
}

// Session is an issued access token.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

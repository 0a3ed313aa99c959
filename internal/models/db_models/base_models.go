package db_models

import (
	"time"

	"github.com/google/uuid"

	"tripmigo/pkg/utils"
)

// BaseModel is embedded by every record kept in the key-value store.
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := utils.NowUTC()
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) BeforeUpdate() {
	b.UpdatedAt = utils.NowUTC()
}

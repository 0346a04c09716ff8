package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşır.
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tablolara gömülen ortak alanlar.
// CreatedBy/UpdatedBy/DeletedBy hook'lar tarafından context'ten doldurulur.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `gorm:"index" json:"created_by,omitempty"`
	UpdatedBy *uint          `json:"updated_by,omitempty"`
	DeletedBy *uint          `json:"-"`
}

// ContextWithUserID hook'ların okuyacağı kullanıcı ID'sini context'e ekler.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür (yoksa 0, false).
func UserIDFromContext(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(ContextUserIDKey).(uint)
	return id, ok
}

// BeforeCreate context'teki kullanıcıyı CreatedBy olarak işler.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if tx.Statement != nil && tx.Statement.Context != nil {
		if userID, ok := UserIDFromContext(tx.Statement.Context); ok && userID != 0 {
			b.CreatedBy = &userID
		}
	}
	return nil
}

// BeforeUpdate context'teki kullanıcıyı UpdatedBy olarak işler.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement != nil && tx.Statement.Context != nil {
		if userID, ok := UserIDFromContext(tx.Statement.Context); ok && userID != 0 {
			b.UpdatedBy = &userID
		}
	}
	return nil
}

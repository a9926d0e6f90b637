package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot keys mirror the browser demo's local-storage entries.
const (
	SlotUser = "quickcourt_user"
	SlotAuth = "quickcourt_auth"
)

// SessionSlot is a two-key get/set store: the persisted user record and
// the persisted authentication flag.
type SessionSlot struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (SessionSlot) TableName() string { return "session_slots" }

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get returns the stored value and false when the slot is empty.
func (r *SessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var slot SessionSlot
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return slot.Value, true, nil
}

func (r *SessionRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&SessionSlot{Key: key, Value: value}).Error
}

func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&SessionSlot{}).Error
}

package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/threadline-co/threadline-backend/pkg/db/models"
)

// Fixed record names shared with the stores that persist through here.
const (
	CartRecordName = "cart-storage"
	UserRecordName = "user-storage"
)

// Repository owns the client-scoped JSON snapshots. Stores write through
// on every mutation and read once at initialization.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a snapshot repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Load fetches the named snapshot for the client. The second return is
// false when no snapshot has ever been saved.
func (r *Repository) Load(ctx context.Context, clientID, name string) ([]byte, bool, error) {
	var record models.StorageRecord
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND name = ?", clientID, name).
		First(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return record.Payload, true, nil
}

// Save upserts the named snapshot, replacing any prior payload.
func (r *Repository) Save(ctx context.Context, clientID, name string, payload []byte) error {
	record := models.StorageRecord{
		ClientID: clientID,
		Name:     name,
		Payload:  payload,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).
		Error
}

// Delete drops the named snapshot if it exists.
func (r *Repository) Delete(ctx context.Context, clientID, name string) error {
	return r.db.WithContext(ctx).
		Where("client_id = ? AND name = ?", clientID, name).
		Delete(&models.StorageRecord{}).
		Error
}

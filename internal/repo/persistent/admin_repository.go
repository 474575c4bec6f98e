package persistent

import (
	"context"

	"portfolio-api/internal/entity"
	"portfolio-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.AdminCredential, error)
	// Upsert stores the credential, replacing the hash of an existing username.
	Upsert(ctx context.Context, username, passwordHash string) error
	// DeleteExcept removes every credential other than username.
	DeleteExcept(ctx context.Context, username string) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	var m model.AdminUserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translate(err, "get admin")
	}
	return ToAdminEntity(&m), nil
}

func (r *adminRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	m := &model.AdminUserModel{Username: username, PasswordHash: passwordHash}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(m).Error
	return translate(err, "upsert admin")
}

func (r *adminRepository) DeleteExcept(ctx context.Context, username string) (int64, error) {
	result := r.db.WithContext(ctx).Where("username <> ?", username).Delete(&model.AdminUserModel{})
	if result.Error != nil {
		return 0, translate(result.Error, "delete stale admins")
	}
	return result.RowsAffected, nil
}

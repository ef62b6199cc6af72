package repositories

import (
	"time"

	"github.com/nwfth/forms-go/db"
	"github.com/nwfth/forms-go/models"
)

type ResetRepo interface {
	Create(reset *models.PasswordReset) error
	FindActiveByToken(token string, now time.Time) (models.PasswordReset, error)
	MarkUsed(id uint) error
}

type DBResetRepo struct{}

func (r *DBResetRepo) Create(reset *models.PasswordReset) error {
	return db.DB.Create(reset).Error
}

// FindActiveByToken only matches tickets that are unused and unexpired, so a
// consumed or stale ticket reads the same as a missing one.
func (r *DBResetRepo) FindActiveByToken(token string, now time.Time) (models.PasswordReset, error) {
	var reset models.PasswordReset
	err := db.DB.
		Where("reset_token = ? AND expiry > ? AND used = ?", token, now, false).
		First(&reset).Error
	if err != nil {
		return models.PasswordReset{}, err
	}
	return reset, nil
}

func (r *DBResetRepo) MarkUsed(id uint) error {
	return db.DB.Model(&models.PasswordReset{}).Where("id = ?", id).Update("used", true).Error
}

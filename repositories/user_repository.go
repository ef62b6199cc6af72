package repositories

import (
	"github.com/nwfth/forms-go/db"
	"github.com/nwfth/forms-go/models"
)

type UserRepo interface {
	GetUserByEmail(email string) (models.User, error)
	GetLocalUserByEmail(email string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	SaveUser(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetLocalUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ? AND is_domain_user = ?", email, false).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}

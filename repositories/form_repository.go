package repositories

import (
	"time"

	"github.com/nwfth/forms-go/db"
	"github.com/nwfth/forms-go/models"
)

type FormRepo interface {
	Create(form *models.Form) error
	FindAll() ([]models.Form, error)
	FindByOwner(ownerName string) ([]models.Form, error)
	FindByID(id uint) (models.Form, error)
	Save(form *models.Form) error
	Delete(id uint) error
}

type DBFormRepo struct{}

func (r *DBFormRepo) Create(form *models.Form) error {
	if form.RequestDate.IsZero() {
		form.RequestDate = time.Now()
	}
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) FindAll() ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Order("request_date desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByOwner(ownerName string) ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Where("owner_name = ?", ownerName).Order("request_date desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) FindByID(id uint) (models.Form, error) {
	var form models.Form
	if err := db.DB.First(&form, id).Error; err != nil {
		return models.Form{}, err
	}
	return form, nil
}

func (r *DBFormRepo) Save(form *models.Form) error {
	return db.DB.Save(form).Error
}

func (r *DBFormRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Form{}, id).Error
}

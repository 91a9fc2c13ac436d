package repository

import (
	"errors"

	"go-cafe-pos/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	FindAll() ([]model.Rol, error)
	FindByID(id uint) (*model.Rol, error)
	FindByCode(code string) (*model.Rol, error)
	SeedDefaults() error
}

type rolRepo struct {
	db *gorm.DB
}

func NewRolRepo(db *gorm.DB) RolRepository {
	return &rolRepo{db: db}
}

func (r *rolRepo) FindAll() ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.Preload("Privilegios").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(id uint) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.Preload("Privilegios").First(&rol, id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) FindByCode(code string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.Preload("Privilegios").Where("code = ?", code).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) SeedDefaults() error {
	for _, defaultRol := range model.DefaultRoles {
		var existing model.Rol
		err := r.db.Where("code = ?", defaultRol.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&defaultRol).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

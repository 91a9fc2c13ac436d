package repository

import (
	"errors"

	"go-cafe-pos/internal/model"

	"gorm.io/gorm"
)

type PrivilegioRepository interface {
	FindByCodes(codes []string) ([]model.Privilegio, error)
	FindAll() ([]model.Privilegio, error)
	SeedDefaults() error
}

type privilegioRepo struct {
	db *gorm.DB
}

func NewPrivilegioRepo(db *gorm.DB) PrivilegioRepository {
	return &privilegioRepo{db}
}

func (r *privilegioRepo) FindByCodes(codes []string) ([]model.Privilegio, error) {
	var privilegios []model.Privilegio
	if err := r.db.Where("code IN ?", codes).Find(&privilegios).Error; err != nil {
		return nil, err
	}
	return privilegios, nil
}

func (r *privilegioRepo) FindAll() ([]model.Privilegio, error) {
	var privilegios []model.Privilegio
	if err := r.db.Find(&privilegios).Error; err != nil {
		return nil, err
	}
	return privilegios, nil
}

// SeedDefaults creates the default privileges if they don't exist
func (r *privilegioRepo) SeedDefaults() error {
	for _, p := range model.DefaultPrivileges {
		var existing model.Privilegio
		err := r.db.Where("code = ?", p.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&p).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

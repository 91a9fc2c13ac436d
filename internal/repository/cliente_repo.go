package repository

import (
	"go-cafe-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(cliente *model.Cliente) error
	FindByID(id uuid.UUID) (*model.Cliente, error)
	SearchByNombre(q string) ([]model.Cliente, error)
	FindAll() ([]model.Cliente, error)
}

type clienteRepo struct {
	db *gorm.DB
}

func NewClienteRepo(db *gorm.DB) ClienteRepository {
	return &clienteRepo{db}
}

func (r *clienteRepo) Create(cliente *model.Cliente) error {
	return r.db.Create(cliente).Error
}

func (r *clienteRepo) FindByID(id uuid.UUID) (*model.Cliente, error) {
	var cliente model.Cliente
	if err := r.db.First(&cliente, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

// SearchByNombre matches a partial, case-insensitive name
func (r *clienteRepo) SearchByNombre(q string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.Where("LOWER(nombre) LIKE LOWER(?)", "%"+q+"%").
		Order("nombre").
		Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) FindAll() ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.Order("nombre").Find(&clientes).Error
	return clientes, err
}

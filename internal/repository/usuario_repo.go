package repository

import (
	"go-cafe-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	FindByCorreo(correo string) (*model.Usuario, error)
	FindByID(id uuid.UUID) (*model.Usuario, error)
	FindAll() ([]model.Usuario, error)
	Create(usuario *model.Usuario) error
	Update(usuario *model.Usuario) error
	Delete(id uuid.UUID) error
	UpdatePassword(userID uuid.UUID, hashedPassword string) error
	UpdateTokenVersion(userID uuid.UUID, version string) error
}

type usuarioRepo struct {
	db *gorm.DB
}

func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db}
}

func (r *usuarioRepo) FindByCorreo(correo string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.Preload("Rol").Preload("Rol.Privilegios").
		Where("correo = ?", correo).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) FindByID(id uuid.UUID) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.Preload("Rol").Preload("Rol.Privilegios").
		First(&usuario, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) FindAll() ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := r.db.Preload("Rol").Order("nombre").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) Create(usuario *model.Usuario) error {
	return r.db.Create(usuario).Error
}

func (r *usuarioRepo) Update(usuario *model.Usuario) error {
	return r.db.Save(usuario).Error
}

func (r *usuarioRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&model.Usuario{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *usuarioRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Usuario{}).Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

func (r *usuarioRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	return r.db.Model(&model.Usuario{}).Where("id = ?", userID).
		Update("token_version", version).Error
}

package service

import (
	"errors"
	"fmt"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioService interface {
	CrearUsuario(req *CrearUsuarioRequest, creadorID string) (*model.Usuario, error)
	ActualizarUsuario(id uuid.UUID, req *ActualizarUsuarioRequest, editorID string) (*model.Usuario, error)
	EliminarUsuario(id uuid.UUID) error
	Usuarios() ([]model.UsuarioResponse, error)
	UsuarioPorID(id uuid.UUID) (*model.UsuarioResponse, error)
}

type CrearUsuarioRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
	Rol        string `json:"rol" validate:"required"`
}

type ActualizarUsuarioRequest struct {
	Nombre     string  `json:"nombre" validate:"required"`
	Correo     string  `json:"correo" validate:"required,email"`
	Contrasena *string `json:"contrasena,omitempty" validate:"omitempty,min=6"`
	Rol        string  `json:"rol" validate:"required"`
	Activo     *bool   `json:"activo"`
}

type usuarioService struct {
	usuarioRepo repository.UsuarioRepository
	rolRepo     repository.RolRepository
}

func NewUsuarioService(usuarioRepo repository.UsuarioRepository, rolRepo repository.RolRepository) UsuarioService {
	return &usuarioService{
		usuarioRepo: usuarioRepo,
		rolRepo:     rolRepo,
	}
}

func (s *usuarioService) CrearUsuario(req *CrearUsuarioRequest, creadorID string) (*model.Usuario, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	existing, _ := s.usuarioRepo.FindByCorreo(req.Correo)
	if existing != nil {
		return nil, ErrCorreoExiste
	}

	rol, err := s.rolRepo.FindByCode(req.Rol)
	if err != nil {
		return nil, NewValidationError("rol desconocido: " + req.Rol)
	}

	usuario := &model.Usuario{
		Nombre: req.Nombre,
		Correo: req.Correo,
		RolID:  &rol.ID,
		Activo: true,
	}
	usuario.CreatedBy = creadorID
	usuario.UpdatedBy = creadorID

	if err := usuario.SetPassword(req.Contrasena); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}

	return s.usuarioRepo.FindByID(usuario.ID)
}

func (s *usuarioService) ActualizarUsuario(id uuid.UUID, req *ActualizarUsuarioRequest, editorID string) (*model.Usuario, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, NewValidationError(fmt.Sprintf(
			"Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if req.Correo != usuario.Correo {
		existing, _ := s.usuarioRepo.FindByCorreo(req.Correo)
		if existing != nil {
			return nil, ErrCorreoExiste
		}
	}

	rol, err := s.rolRepo.FindByCode(req.Rol)
	if err != nil {
		return nil, NewValidationError("rol desconocido: " + req.Rol)
	}

	usuario.Nombre = req.Nombre
	usuario.Correo = req.Correo
	usuario.RolID = &rol.ID
	usuario.Rol = nil // force reload of the association below
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}
	usuario.UpdatedBy = editorID

	if req.Contrasena != nil && *req.Contrasena != "" {
		if err := usuario.SetPassword(*req.Contrasena); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	if err := s.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}

	return s.usuarioRepo.FindByID(id)
}

func (s *usuarioService) EliminarUsuario(id uuid.UUID) error {
	if err := s.usuarioRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoEncontrado
		}
		return err
	}
	return nil
}

func (s *usuarioService) Usuarios() ([]model.UsuarioResponse, error) {
	usuarios, err := s.usuarioRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *usuarioService) UsuarioPorID(id uuid.UUID) (*model.UsuarioResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(id)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}
	resp := usuario.ToResponse()
	return &resp, nil
}

package service

import (
	"errors"

	"github.com/google/uuid"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/jwt"
)

type AuthService interface {
	Login(correo, password string) (*LoginResponse, error)
	ResetPassword(correo, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token       string                `json:"token"`
	Usuario     model.UsuarioResponse `json:"usuario"`
	Privilegios []string              `json:"privilegios"`
}

type TokenValidationResponse struct {
	Usuario     model.UsuarioResponse `json:"usuario"`
	Privilegios []string              `json:"privilegios"`
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
}

func NewAuthService(usuarioRepo repository.UsuarioRepository) AuthService {
	return &authService{usuarioRepo: usuarioRepo}
}

// Login verifies credentials against the stored bcrypt hash and issues a
// JWT carrying role and privilege codes. A mismatch never reveals which
// part failed.
func (s *authService) Login(correo, password string) (*LoginResponse, error) {
	usuario, err := s.usuarioRepo.FindByCorreo(correo)
	if err != nil {
		return nil, ErrCredencialesInvalidas
	}

	if !usuario.Activo {
		return nil, ErrUsuarioInactivo
	}

	if !usuario.CheckPassword(password) {
		return nil, ErrCredencialesInvalidas
	}

	// Rotate the token version so older sessions stop validating
	newTokenVersion := uuid.New().String()
	if err := s.usuarioRepo.UpdateTokenVersion(usuario.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(usuario.ID, usuario.Correo, usuario.Nombre,
		usuario.RolCode(), usuario.PrivilegeCodes(), newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		Usuario:     usuario.ToResponse(),
		Privilegios: usuario.PrivilegeCodes(),
	}, nil
}

func (s *authService) ResetPassword(correo, oldPassword, newPassword string) error {
	usuario, err := s.usuarioRepo.FindByCorreo(correo)
	if err != nil {
		return ErrUsuarioNoEncontrado
	}

	if !usuario.CheckPassword(oldPassword) {
		return ErrPasswordIncorrecta
	}

	if err := usuario.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	return s.usuarioRepo.Update(usuario)
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarioRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUsuarioNoEncontrado
	}

	if !usuario.Activo {
		return nil, ErrUsuarioInactivo
	}

	if usuario.TokenVersion != claims.TokenVersion {
		return nil, errors.New("sesión expirada (inicio de sesión en otro dispositivo)")
	}

	return &TokenValidationResponse{
		Usuario:     usuario.ToResponse(),
		Privilegios: usuario.PrivilegeCodes(),
	}, nil
}

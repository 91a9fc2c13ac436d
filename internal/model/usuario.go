package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Usuario represents an authenticated employee. Credentials are stored
// as bcrypt hashes and roles are enforced server-side on every request.
type Usuario struct {
	BaseModel
	Nombre   string `gorm:"type:varchar(255);not null" json:"nombre" validate:"required"`
	Correo   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"correo" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON

	RolID *uint `gorm:"index" json:"rol_id"`
	Rol   *Rol  `gorm:"foreignKey:RolID" json:"rol,omitempty"`

	Activo bool `gorm:"default:true" json:"activo"`

	// TokenVersion invalidates previously issued tokens when rotated
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// SetPassword hashes and sets the user's password
func (u *Usuario) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *Usuario) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// RolCode returns the role code, or "" for users without a role
func (u *Usuario) RolCode() string {
	if u.Rol == nil {
		return ""
	}
	return u.Rol.Code
}

// PrivilegeCodes returns the privilege codes granted through the role
func (u *Usuario) PrivilegeCodes() []string {
	if u.Rol == nil {
		return nil
	}
	codes := make([]string, len(u.Rol.Privilegios))
	for i, p := range u.Rol.Privilegios {
		codes[i] = p.Code
	}
	return codes
}

// UsuarioResponse is used for API responses (without sensitive data)
type UsuarioResponse struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Correo string    `json:"correo"`
	Rol    string    `json:"rol"`
	Activo bool      `json:"activo"`
}

// ToResponse converts Usuario to UsuarioResponse
func (u *Usuario) ToResponse() UsuarioResponse {
	rol := ""
	if u.Rol != nil {
		rol = u.Rol.Nombre
	}
	return UsuarioResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Correo: u.Correo,
		Rol:    rol,
		Activo: u.Activo,
	}
}

package model

// Rol represents an employee role
type Rol struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Code        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Nombre      string       `gorm:"type:varchar(100)" json:"nombre"`
	Descripcion string       `gorm:"type:text" json:"descripcion"`
	Privilegios []Privilegio `gorm:"many2many:rol_privilegios;" json:"privilegios,omitempty"`
}

func (Rol) TableName() string {
	return "roles"
}

// Role codes as constants
const (
	RolAdministrador = "ADMINISTRADOR"
	RolEncargado     = "ENCARGADO_INVENTARIO"
	RolCajero        = "CAJERO"
)

// DefaultRoles defines the three employee roles
var DefaultRoles = []Rol{
	{
		Code:        RolAdministrador,
		Nombre:      "Administrador",
		Descripcion: "Acceso completo al sistema",
	},
	{
		Code:        RolEncargado,
		Nombre:      "Encargado de inventario",
		Descripcion: "Inventario, productos y reportes; sin administración de usuarios",
	},
	{
		Code:        RolCajero,
		Nombre:      "Cajero/Mesero",
		Descripcion: "Toma de pedidos y consultas; sin mutaciones de inventario ni usuarios",
	},
}

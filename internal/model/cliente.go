package model

// Cliente identifies who an order is for (a named customer or a table).
// Correo is optional; walk-in clients are created on demand during order
// placement.
type Cliente struct {
	BaseModel
	Nombre string  `gorm:"type:varchar(255);not null;index" json:"nombre" validate:"required"`
	Correo *string `gorm:"type:varchar(255)" json:"correo,omitempty" validate:"omitempty,email"`
}

func (Cliente) TableName() string {
	return "clientes"
}

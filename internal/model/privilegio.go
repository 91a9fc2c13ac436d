package model

// Privilegio represents a permission that can be granted through a role
type Privilegio struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "inventario:update"
	Nombre string `gorm:"type:varchar(100)" json:"nombre"`
}

func (Privilegio) TableName() string {
	return "privilegios"
}

// Default privileges for the system
var DefaultPrivileges = []Privilegio{
	// Menu & products
	{Code: "menu:view", Nombre: "Ver menú"},
	{Code: "producto:create", Nombre: "Crear producto"},
	{Code: "producto:update", Nombre: "Actualizar producto"},
	{Code: "producto:delete", Nombre: "Eliminar producto"},
	// Inventory supplies
	{Code: "inventario:view", Nombre: "Ver inventario"},
	{Code: "inventario:create", Nombre: "Crear insumo"},
	{Code: "inventario:update", Nombre: "Ajustar inventario"},
	{Code: "inventario:delete", Nombre: "Eliminar insumo"},
	// Orders
	{Code: "pedido:view", Nombre: "Ver pedidos"},
	{Code: "pedido:create", Nombre: "Registrar pedido"},
	{Code: "pedido:complete", Nombre: "Completar pedido"},
	// Clients
	{Code: "cliente:view", Nombre: "Ver clientes"},
	{Code: "cliente:create", Nombre: "Crear cliente"},
	// Users (admin only)
	{Code: "usuario:view", Nombre: "Ver usuarios"},
	{Code: "usuario:create", Nombre: "Crear usuario"},
	{Code: "usuario:update", Nombre: "Actualizar usuario"},
	{Code: "usuario:delete", Nombre: "Eliminar usuario"},
	// Reports & notifications
	{Code: "reporte:view", Nombre: "Ver reportes"},
	{Code: "orden_compra:create", Nombre: "Solicitar orden de compra"},
	{Code: "ticket:send", Nombre: "Enviar ticket de compra"},
}

// privilege sets assigned to each role at seed time

// EncargadoPrivileges: inventory, products and reports, no user admin
var EncargadoPrivileges = []string{
	"menu:view",
	"producto:create", "producto:update", "producto:delete",
	"inventario:view", "inventario:create", "inventario:update", "inventario:delete",
	"pedido:view",
	"cliente:view",
	"reporte:view",
	"orden_compra:create",
}

// CajeroPrivileges: takes and closes orders, everything else read-only
var CajeroPrivileges = []string{
	"menu:view",
	"inventario:view",
	"pedido:view", "pedido:create", "pedido:complete",
	"cliente:view", "cliente:create",
	"ticket:send",
}

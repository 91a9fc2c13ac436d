package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-cafe-pos/internal/handler"
	"go-cafe-pos/internal/mailer"
	"go-cafe-pos/internal/middleware"
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/config"
	"go-cafe-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	opts := config.Load()

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.CategoriaMenu{}, &model.Producto{}, &model.Receta{},
		&model.CategoriaInsumo{}, &model.Insumo{},
		&model.Cliente{}, &model.Pedido{}, &model.DetallePedido{},
		&model.Usuario{}, &model.Rol{}, &model.Privilegio{},
	)

	// 3. Seed roles, privileges and the default admin
	seedRolesPrivilegiosYAdmin(db)

	// 4. WebSocket hub for the order panel
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productoRepo := repository.NewProductoRepo(db)
	insumoRepo := repository.NewInsumoRepo(db)
	pedidoRepo := repository.NewPedidoRepo(db)
	clienteRepo := repository.NewClienteRepo(db)
	usuarioRepo := repository.NewUsuarioRepo(db)
	rolRepo := repository.NewRolRepo(db)

	authService := service.NewAuthService(usuarioRepo)
	menuService := service.NewMenuService(productoRepo, db)
	invService := service.NewInventarioService(insumoRepo, db, wsHub)
	pedidoService := service.NewPedidoService(pedidoRepo, productoRepo, db, opts, wsHub)
	clienteService := service.NewClienteService(clienteRepo)
	usuarioService := service.NewUsuarioService(usuarioRepo, rolRepo)
	posMailer := mailer.New(opts)

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(menuService)
	invHandler := handler.NewInventarioHandler(invService)
	pedidoHandler := handler.NewPedidoHandler(pedidoService)
	clienteHandler := handler.NewClienteHandler(clienteService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	reporteHandler := handler.NewReporteHandler(pedidoService, invService)
	notifHandler := handler.NewNotificacionHandler(posMailer, pedidoService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Cafeteria POS v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/login", authHandler.Login)
	api.Post("/reset-password", authHandler.ResetPassword)
	api.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(usuarioRepo))

	// Menu
	protected.Get("/menu", menuHandler.GetMenu)
	protected.Get("/categorias_menu", menuHandler.GetCategorias)

	// Inventory (supplies)
	inv := protected.Group("/inventario")
	inv.Get("/bebidas", menuHandler.GetBebidas)
	inv.Post("/productos", middleware.RequirePrivilege("producto:create"), menuHandler.CrearProducto)
	inv.Put("/productos/:id", middleware.RequirePrivilege("producto:update"), menuHandler.ActualizarStock)
	inv.Delete("/productos/:id", middleware.RequirePrivilege("producto:delete"), menuHandler.EliminarProducto)

	inv.Get("/categorias", invHandler.GetCategorias)
	inv.Get("/categoria/:idCategoria", invHandler.GetPorCategoria)
	inv.Get("/status", invHandler.Status)
	inv.Get("/producto/:id", invHandler.GetInsumo)
	inv.Post("/producto", middleware.RequirePrivilege("inventario:create"), invHandler.CrearInsumo)
	inv.Put("/producto/:id", middleware.RequirePrivilege("inventario:update"), invHandler.AjustarCantidad)
	inv.Delete("/producto/:id", middleware.RequirePrivilege("inventario:delete"), invHandler.EliminarInsumo)

	// Orders
	protected.Get("/pedidos", pedidoHandler.GetPendientes)
	protected.Get("/pedidos/completados", pedidoHandler.GetCompletados)
	protected.Get("/pedidos/:id/detalle", pedidoHandler.GetDetalle)
	protected.Post("/pedidos", middleware.RequirePrivilege("pedido:create"), pedidoHandler.RegistrarPedido)
	protected.Put("/pedidos/:id/completar", middleware.RequirePrivilege("pedido:complete"), pedidoHandler.Completar)

	// Clients
	protected.Get("/clientes", clienteHandler.Buscar)
	protected.Post("/clientes", middleware.RequirePrivilege("cliente:create"), clienteHandler.CrearCliente)

	// Users
	protected.Get("/usuarios", middleware.RequirePrivilege("usuario:view"), usuarioHandler.GetUsuarios)
	protected.Get("/usuarios/:id", middleware.RequirePrivilege("usuario:view"), usuarioHandler.GetUsuario)
	protected.Post("/usuarios", middleware.RequirePrivilege("usuario:create"), usuarioHandler.CrearUsuario)
	protected.Put("/usuarios/:id", middleware.RequirePrivilege("usuario:update"), usuarioHandler.ActualizarUsuario)
	protected.Delete("/usuarios/:id", middleware.RequirePrivilege("usuario:delete"), usuarioHandler.EliminarUsuario)

	// Reports & notifications
	protected.Post("/reportes/top", middleware.RequirePrivilege("reporte:view"), reporteHandler.TopProductos)
	protected.Get("/reportes/stock-bajo", middleware.RequirePrivilege("reporte:view"), reporteHandler.StockBajo)
	protected.Post("/ordenar", middleware.RequirePrivilege("orden_compra:create"), notifHandler.EnviarOrdenCompra)
	protected.Post("/ticket", middleware.RequirePrivilege("ticket:send"), notifHandler.EnviarTicket)

	// WebSocket route for the live order board
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesPrivilegiosYAdmin creates the default privileges, the three
// employee roles, and an admin user if they don't exist
func seedRolesPrivilegiosYAdmin(db *gorm.DB) {
	privilegioRepo := repository.NewPrivilegioRepo(db)
	rolRepo := repository.NewRolRepo(db)
	usuarioRepo := repository.NewUsuarioRepo(db)

	if err := privilegioRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}

	if err := rolRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	allPrivilegios, _ := privilegioRepo.FindAll()

	// ADMINISTRADOR gets every privilege
	adminRol, err := rolRepo.FindByCode(model.RolAdministrador)
	if err == nil && len(adminRol.Privilegios) == 0 {
		db.Model(&adminRol).Association("Privilegios").Replace(allPrivilegios)
		log.Println("ADMINISTRADOR role assigned all privileges")
	}

	// ENCARGADO_INVENTARIO: inventory, products and reports
	encargadoRol, err := rolRepo.FindByCode(model.RolEncargado)
	if err == nil && len(encargadoRol.Privilegios) == 0 {
		privilegios, _ := privilegioRepo.FindByCodes(model.EncargadoPrivileges)
		db.Model(&encargadoRol).Association("Privilegios").Replace(privilegios)
		log.Println("ENCARGADO_INVENTARIO role assigned inventory privileges")
	}

	// CAJERO: takes orders, everything else read-only
	cajeroRol, err := rolRepo.FindByCode(model.RolCajero)
	if err == nil && len(cajeroRol.Privilegios) == 0 {
		privilegios, _ := privilegioRepo.FindByCodes(model.CajeroPrivileges)
		db.Model(&cajeroRol).Association("Privilegios").Replace(privilegios)
		log.Println("CAJERO role assigned POS privileges")
	}

	// Default admin user
	correo := "admin@cafeteria.local"
	if _, err := usuarioRepo.FindByCorreo(correo); err != nil {
		adminRol, _ := rolRepo.FindByCode(model.RolAdministrador)

		admin := &model.Usuario{
			Nombre: "Administrador",
			Correo: correo,
			RolID:  &adminRol.ID,
			Activo: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := usuarioRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Printf("Admin user created: %s / admin123", correo)
		}
	}
}

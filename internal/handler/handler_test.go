package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-cafe-pos/internal/handler"
	"go-cafe-pos/internal/middleware"
	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/internal/service"
	"go-cafe-pos/internal/ws"
	"go-cafe-pos/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.CategoriaMenu{}, &model.Producto{}, &model.Receta{},
		&model.CategoriaInsumo{}, &model.Insumo{},
		&model.Cliente{}, &model.Pedido{}, &model.DetallePedido{},
		&model.Usuario{}, &model.Rol{}, &model.Privilegio{},
	)
	require.NoError(t, err)

	return db
}

// newTestApp wires the auth, order and client routes the same way the
// API entrypoint does.
func newTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	hub := ws.NewHub()
	go hub.Run()

	usuarioRepo := repository.NewUsuarioRepo(db)
	pedidoRepo := repository.NewPedidoRepo(db)
	productoRepo := repository.NewProductoRepo(db)
	clienteRepo := repository.NewClienteRepo(db)

	opts := config.Options{IVARate: decimal.NewFromFloat(0.16)}

	authHandler := handler.NewAuthHandler(service.NewAuthService(usuarioRepo))
	pedidoHandler := handler.NewPedidoHandler(
		service.NewPedidoService(pedidoRepo, productoRepo, db, opts, hub))
	clienteHandler := handler.NewClienteHandler(service.NewClienteService(clienteRepo))

	app := fiber.New()
	api := app.Group("/api")

	api.Post("/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(usuarioRepo))
	protected.Get("/pedidos", pedidoHandler.GetPendientes)
	protected.Get("/pedidos/completados", pedidoHandler.GetCompletados)
	protected.Get("/pedidos/:id/detalle", pedidoHandler.GetDetalle)
	protected.Post("/pedidos", middleware.RequirePrivilege("pedido:create"), pedidoHandler.RegistrarPedido)
	protected.Put("/pedidos/:id/completar", middleware.RequirePrivilege("pedido:complete"), pedidoHandler.Completar)
	protected.Get("/clientes", clienteHandler.Buscar)

	return app
}

// seedCajero creates a user holding the cashier privilege set
func seedCajero(t *testing.T, db *gorm.DB, correo, password string) *model.Usuario {
	t.Helper()

	privilegios := make([]model.Privilegio, len(model.CajeroPrivileges))
	for i, code := range model.CajeroPrivileges {
		privilegios[i] = model.Privilegio{Code: code, Nombre: code}
	}

	rol := &model.Rol{Code: model.RolCajero, Nombre: "Cajero/Mesero", Privilegios: privilegios}
	require.NoError(t, db.Create(rol).Error)

	usuario := &model.Usuario{Nombre: "Caja Uno", Correo: correo, Activo: true, RolID: &rol.ID}
	require.NoError(t, usuario.SetPassword(password))
	require.NoError(t, db.Create(usuario).Error)
	return usuario
}

func seedClienteYProducto(t *testing.T, db *gorm.DB) (*model.Cliente, *model.Producto) {
	t.Helper()

	cliente := &model.Cliente{Nombre: "Ana"}
	require.NoError(t, db.Create(cliente).Error)

	categoria := &model.CategoriaMenu{Nombre: "Bebidas"}
	require.NoError(t, db.Create(categoria).Error)

	producto := &model.Producto{
		Nombre:      "Latte",
		Precio:      decimal.RequireFromString("50.00"),
		Stock:       10,
		CategoriaID: categoria.ID,
	}
	require.NoError(t, db.Create(producto).Error)
	return cliente, producto
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App, correo, password string) string {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/login", "", map[string]interface{}{
		"email": correo, "password": password,
	})
	require.Equal(t, 200, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)
	seedCajero(t, db, "caja@cafeteria.local", "cafecito1")

	t.Run("credenciales válidas", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", "/api/login", "", map[string]interface{}{
			"email": "caja@cafeteria.local", "password": "cafecito1",
		})
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["token"])
		assert.NotEmpty(t, body["privilegios"])
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", "/api/login", "", map[string]interface{}{
			"email": "caja@cafeteria.local", "password": "otra",
		})
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Credenciales inválidas", body["message"])
	})

	t.Run("campos faltantes", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/api/login", "", map[string]interface{}{
			"email": "caja@cafeteria.local",
		})
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestPedidos_RequiereToken(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	resp, _ := doJSON(t, app, "GET", "/api/pedidos", "", nil)
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/pedidos", "token-invalido", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRegistrarYCompletarPedido(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	usuario := seedCajero(t, db, "caja@cafeteria.local", "cafecito1")
	cliente, producto := seedClienteYProducto(t, db)
	token := login(t, app, "caja@cafeteria.local", "cafecito1")

	resp, body := doJSON(t, app, "POST", "/api/pedidos", token, map[string]interface{}{
		"idCliente": cliente.ID,
		"idUsuario": usuario.ID,
		"total":     100.00,
		"productos": []map[string]interface{}{
			{"id": producto.ID, "cantidad": 2, "subtotal": 100.00},
		},
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	idPedido, _ := body["idPedido"].(string)
	require.NotEmpty(t, idPedido)

	// shows up on the pending board
	req := httptest.NewRequest("GET", "/api/pedidos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, listResp.StatusCode)

	var pendientes []map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&pendientes))
	require.Len(t, pendientes, 1)
	assert.Equal(t, "Ana", pendientes[0]["nombre_cliente"])

	resp, body = doJSON(t, app, "PUT", "/api/pedidos/"+idPedido+"/completar", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	// pending board drains, completed list gains it
	resp, _ = doJSON(t, app, "GET", "/api/pedidos", token, nil)
	assert.Equal(t, 200, resp.StatusCode)

	var pedido model.Pedido
	require.NoError(t, db.First(&pedido, "id = ?", idPedido).Error)
	assert.Equal(t, model.PedidoCompletado, pedido.Estado)
}

func TestCompletar_PedidoInexistente(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	seedCajero(t, db, "caja@cafeteria.local", "cafecito1")
	token := login(t, app, "caja@cafeteria.local", "cafecito1")

	resp, body := doJSON(t, app, "PUT", "/api/pedidos/"+uuid.NewString()+"/completar", token, nil)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Pedido no encontrado.", body["message"])
}

func TestRegistrarPedido_SinPrivilegio(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(t, db)

	// user without a role carries no privileges
	usuario := &model.Usuario{Nombre: "Sin Rol", Correo: "sinrol@cafeteria.local", Activo: true}
	require.NoError(t, usuario.SetPassword("cafecito1"))
	require.NoError(t, db.Create(usuario).Error)

	token := login(t, app, "sinrol@cafeteria.local", "cafecito1")

	resp, _ := doJSON(t, app, "POST", "/api/pedidos", token, map[string]interface{}{
		"idCliente": uuid.New(), "idUsuario": usuario.ID, "total": 10.0,
		"productos": []map[string]interface{}{{"id": uuid.New(), "cantidad": 1, "subtotal": 10.0}},
	})
	assert.Equal(t, 403, resp.StatusCode)
}

package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
)

// Event types pushed to the order panel and inventory screens
const (
	EventPedidoCreado     = "pedido_creado"
	EventPedidoCompletado = "pedido_completado"
	EventStockAjustado    = "stock_ajustado"
)

// Hub fans out order-board and stock events to connected clients
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()
			log.Println("WS client disconnected")

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// PublishEvent marshals and broadcasts a typed event without blocking
// the caller
func (h *Hub) PublishEvent(tipo string, payload map[string]interface{}) {
	go func() {
		body := map[string]interface{}{
			"type":      tipo,
			"timestamp": time.Now(),
		}
		for k, v := range payload {
			body[k] = v
		}
		msg, err := json.Marshal(body)
		if err != nil {
			return
		}
		h.Broadcast <- msg
	}()
}

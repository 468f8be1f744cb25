package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/PescadorStudios/Vlado/internal/infra/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub difunde los cambios del Store a todos los dashboards conectados.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// Pump consume un canal de cambios y lo difunde hasta que el canal cierre.
// Pensado para correr en una goroutine por colección.
func (h *Hub) Pump(events <-chan database.ChangeEvent) {
	for event := range events {
		h.Broadcast(event)
	}
}

func (h *Hub) Broadcast(event database.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteJSON(event); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// Handler registra la conexión y la mantiene hasta que el cliente corte.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió el error al cliente.
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// StreamTo escribe un canal de cambios en una única conexión. Corta cuando
// el canal cierra o el cliente se va; el caller es dueño del cancel del
// watch y debe llamarlo en todo camino de salida.
func StreamTo(w http.ResponseWriter, r *http.Request, events <-chan database.ChangeEvent) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := conn.WriteJSON(event); err != nil {
				return err
			}
		case <-done:
			return nil
		}
	}
}

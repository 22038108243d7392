package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Evento is what the admin dashboard receives live: a new cita, a
// cancellation, a registered pago.
type Evento struct {
	Tipo string      `json:"tipo"`
	Dato interface{} `json:"dato"`
}

const (
	EventoCitaCreada     = "cita_creada"
	EventoCitaCancelada  = "cita_cancelada"
	EventoPagoRegistrado = "pago_registrado"
)

var clients = make(map[*websocket.Conn]bool)
var clientsMu sync.RWMutex
var Register = make(chan *websocket.Conn)
var Unregister = make(chan *websocket.Conn)
var Broadcast = make(chan *Evento)

func init() {
	go RunHub()
}

func RunHub() {
	for {
		select {
		case conn := <-Register:
			log.Println("Admin dashboard client connected")
			clientsMu.Lock()
			clients[conn] = true
			clientsMu.Unlock()
		case conn := <-Unregister:
			log.Println("Admin dashboard client disconnected")
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
		case evento := <-Broadcast:
			var muertos []*websocket.Conn
			clientsMu.RLock()
			for conn := range clients {
				if err := conn.WriteJSON(evento); err != nil {
					log.Printf("Error sending event to dashboard client: %v", err)
					conn.Close()
					muertos = append(muertos, conn)
				}
			}
			clientsMu.RUnlock()
			if len(muertos) > 0 {
				clientsMu.Lock()
				for _, conn := range muertos {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Publicar pushes an event to every connected dashboard client.
func Publicar(tipo string, dato interface{}) {
	Broadcast <- &Evento{Tipo: tipo, Dato: dato}
}

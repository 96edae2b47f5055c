package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"boutiqueBack/internal/models"
)

const (
	priceReadLimit    = 512
	priceReadDeadline = 120 * time.Second
	priceWriteWait    = 5 * time.Second
	pricePingInterval = 15 * time.Second
)

// PriceFeed pushes recomputed solidarity prices to every connected
// display client. Clients only listen; inbound messages are discarded.
type PriceFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []models.PriceUpdate
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	upgrader   websocket.Upgrader
}

func NewPriceFeed() *PriceFeed {
	return &PriceFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []models.PriceUpdate),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (f *PriceFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.clients[conn] = true
		case conn := <-f.unregister:
			if _, ok := f.clients[conn]; ok {
				conn.Close()
				delete(f.clients, conn)
			}
		case updates := <-f.broadcast:
			for conn := range f.clients {
				conn.SetWriteDeadline(time.Now().Add(priceWriteWait))
				if err := conn.WriteJSON(updates); err != nil {
					log.Println("Error sending price update:", err)
					conn.Close()
					delete(f.clients, conn)
				}
			}
		}
	}
}

// Broadcast hands a batch of price updates to the Run loop.
func (f *PriceFeed) Broadcast(updates []models.PriceUpdate) {
	f.broadcast <- updates
}

func (f *PriceFeed) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(priceReadLimit)
	conn.SetReadDeadline(time.Now().Add(priceReadDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(priceReadDeadline))
		return nil
	})

	f.register <- conn

	go f.pingLoop(conn)
	go f.readLoop(conn)
}

// pingLoop keeps the connection alive; a client that stops answering runs
// into the read deadline and is unregistered by readLoop.
func (f *PriceFeed) pingLoop(conn *websocket.Conn) {
	t := time.NewTicker(pricePingInterval)
	defer t.Stop()
	for range t.C {
		conn.SetWriteDeadline(time.Now().Add(priceWriteWait))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			f.unregister <- conn
			return
		}
	}
}

func (f *PriceFeed) readLoop(conn *websocket.Conn) {
	defer func() {
		f.unregister <- conn
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Package kds pushes table, order and dashboard changes to connected
// kitchen displays and staff dashboards over websocket.
package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

const (
	EventTableCreate     = "table_create"
	EventTableUpdate     = "table_update"
	EventTableDelete     = "table_delete"
	EventOrderUpdate     = "order_update"
	EventKitchenUpdate   = "kitchen_update"
	EventBookingCreate   = "booking_create"
	EventDashboardUpdate = "dashboard_update"
	EventStaffNotif      = "staff_notification"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mu      sync.Mutex
}

var kdsHub = hub{clients: make(map[*websocket.Conn]string)}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mu.Lock()
	defer kdsHub.mu.Unlock()
	kdsHub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mu.Lock()
	defer kdsHub.mu.Unlock()
	delete(kdsHub.clients, conn)
	conn.Close()
}

func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

func BroadcastBookingCreate(booking models.Booking) {
	broadcast(Message{Event: EventBookingCreate, Data: booking})
}

func BroadcastStaffNotification(text string) {
	broadcast(Message{Event: EventStaffNotif, Data: text})
}

// BroadcastMessage sends an arbitrary event, used for table create and
// delete where the payload bundles dashboard stats.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	kdsHub.mu.Lock()
	defer kdsHub.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("kds: marshal %s event: %v", msg.Event, err)
		return
	}

	for conn := range kdsHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("kds: write to client: %v", err)
		}
	}
}

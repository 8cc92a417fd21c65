package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event kinds pushed to connected dashboards so they refetch.
const (
	EventEntryLogged  = "entry.logged"
	EventEntryDeleted = "entry.deleted"
	EventGoalsUpdated = "goals.updated"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans refresh events out to a user's open websocket
// connections.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Notify broadcasts an event to every open connection for the user.
func (h *RealtimeHub) Notify(userID uint, kind string, payload any) {
	msg, _ := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

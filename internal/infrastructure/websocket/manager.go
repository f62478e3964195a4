package websocket

import (
	"context"
	"sync"

	"barterex/pkg/logger"
)

// Manager owns every active connection and the chat-room broadcast groups.
// Rooms are keyed by chat id; both the registry and the room memberships key
// by connection, so one user may hold several connections at once and a
// reconnect never evicts the live one.
type Manager struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client

	mutex sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client, 64),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.removeClient(client)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// removeClient drops the connection from the registry and from every room it
// joined; room membership ends with the connection. Safe to run more than
// once for the same connection.
func (m *Manager) removeClient(client *Client) {
	m.mutex.Lock()
	known := m.clients[client]
	delete(m.clients, client)
	for chatID, members := range m.rooms {
		if members[client] {
			delete(members, client)
			if len(members) == 0 {
				delete(m.rooms, chatID)
			}
		}
	}
	m.mutex.Unlock()

	// Closed only after the maps no longer reference the connection. enqueue
	// refuses frames once closed, so a broadcast racing this removal drops
	// the frame instead of panicking on a closed channel.
	client.close()

	if !known {
		return
	}
	if client.UserID == "" {
		logger.Warn("Unauthenticated client disconnected")
		return
	}
	logger.Info("Client unregistered: %s", client.UserID)
}

// JoinRoom adds the connection to the chat's broadcast group. Joining a room
// twice is a no-op.
func (m *Manager) JoinRoom(chatID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	members, ok := m.rooms[chatID]
	if !ok {
		members = make(map[*Client]bool)
		m.rooms[chatID] = members
	}
	members[client] = true
}

func (m *Manager) LeaveRoom(chatID string, client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if members, ok := m.rooms[chatID]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(m.rooms, chatID)
		}
	}
}

// BroadcastToRoom delivers the payload to every connection in the chat's
// group, the sender's own connection included. Unreachable members are
// dropped without stalling delivery to the rest of the room.
func (m *Manager) BroadcastToRoom(chatID string, message []byte) {
	m.mutex.RLock()
	members := make([]*Client, 0, len(m.rooms[chatID]))
	for client := range m.rooms[chatID] {
		members = append(members, client)
	}
	m.mutex.RUnlock()

	for _, client := range members {
		if !client.enqueue(message) {
			logger.Warn("Client %s unreachable, dropping connection", client.UserID)
			m.drop(client)
		}
	}
}

// SendToClient delivers a payload to one connection only.
func (m *Manager) SendToClient(client *Client, message []byte) {
	if !client.enqueue(message) {
		logger.Warn("Client %s unreachable, dropping connection", client.UserID)
		m.drop(client)
	}
}

// drop hands a dead or unresponsive connection to the manager loop without
// blocking the caller mid-fan-out.
func (m *Manager) drop(client *Client) {
	select {
	case m.Unregister <- client:
	default:
		go func() { m.Unregister <- client }()
	}
}

// RoomSize reports current membership of a chat's group.
func (m *Manager) RoomSize(chatID string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms[chatID])
}

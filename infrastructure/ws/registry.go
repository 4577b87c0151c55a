package ws

import (
	"sync"

	"hotelchat/pkg/logger"
)

// registry holds the connections local to this process, grouped by user.
type registry struct {
	mu      sync.RWMutex
	clients map[int64]map[string]*UserClient
}

func newRegistry() registry {
	return registry{clients: make(map[int64]map[string]*UserClient)}
}

func (r *registry) add(client *UserClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conns, ok := r.clients[client.UserId]
	if !ok {
		conns = make(map[string]*UserClient)
		r.clients[client.UserId] = conns
	}
	conns[client.Id] = client
}

// remove drops client and closes its queue. It reports whether the client
// was still registered.
func (r *registry) remove(client *UserClient) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	conns, ok := r.clients[client.UserId]
	if !ok {
		return false
	}
	if _, ok := conns[client.Id]; !ok {
		return false
	}
	delete(conns, client.Id)
	client.closeSend()
	if len(conns) == 0 {
		delete(r.clients, client.UserId)
	}
	return true
}

func (r *registry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userId, conns := range r.clients {
		for _, client := range conns {
			client.closeSend()
		}
		delete(r.clients, userId)
	}
}

func (r *registry) has(userId int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients[userId]) > 0
}

func (r *registry) deliver(userId int64, message []byte) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	delivered := 0
	for _, client := range r.clients[userId] {
		if client.Send(message) {
			delivered++
		} else {
			logger.Warn("Failed to send to client: %d (%s)", userId, client.Id)
		}
	}
	return delivered
}

func (r *registry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, conns := range r.clients {
		n += len(conns)
	}
	return n
}

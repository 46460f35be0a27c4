package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/fanzplatform/fanzcore/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

var ErrConnClosed = errors.New("connection closed")

// Registry maps user IDs to their live connections on this instance.
// A connection belongs to exactly one user; a user with no connections has
// no entry.
type Registry struct {
	logger *logrus.Logger
	mu     sync.RWMutex
	users  map[string]map[Conn]struct{}
	owners map[Conn]string
}

func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		logger: logger,
		users:  make(map[string]map[Conn]struct{}),
		owners: make(map[Conn]string),
	}
}

// Register adds conn under userID, moving it if another user held it.
func (r *Registry) Register(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.owners[conn]; ok {
		if prev == userID {
			return
		}
		r.removeLocked(prev, conn)
	}
	set, ok := r.users[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.users[userID] = set
	}
	set[conn] = struct{}{}
	r.owners[conn] = userID
	prometheus.LiveConnections.Set(float64(len(r.owners)))
}

func (r *Registry) Deregister(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(userID, conn)
	prometheus.LiveConnections.Set(float64(len(r.owners)))
}

func (r *Registry) removeLocked(userID string, conn Conn) {
	set, ok := r.users[userID]
	if !ok {
		return
	}
	if _, ok := set[conn]; !ok {
		return
	}
	delete(set, conn)
	delete(r.owners, conn)
	if len(set) == 0 {
		delete(r.users, userID)
	}
}

// Connections returns a snapshot of userID's connections.
func (r *Registry) Connections(userID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.users[userID]
	out := make([]Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

func (r *Registry) HasUser(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[userID]
	return ok
}

// Count is the number of live connections across all users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.owners)
}

func (r *Registry) UserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// PushToUser writes payload to every open connection of userID and returns
// how many writes succeeded. A connection that fails is pruned and the
// remaining ones are still attempted.
func (r *Registry) PushToUser(userID string, payload interface{}) (int, error) {
	data, err := encode(payload)
	if err != nil {
		return 0, err
	}
	return r.send(r.snapshotUser(userID), data), nil
}

// Broadcast writes payload to every open connection on this instance.
func (r *Registry) Broadcast(payload interface{}) (int, error) {
	data, err := encode(payload)
	if err != nil {
		return 0, err
	}
	return r.send(r.snapshotAll(), data), nil
}

type target struct {
	userID string
	conn   Conn
}

func (r *Registry) snapshotUser(userID string) []target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.users[userID]
	out := make([]target, 0, len(set))
	for c := range set {
		out = append(out, target{userID: userID, conn: c})
	}
	return out
}

func (r *Registry) snapshotAll() []target {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]target, 0, len(r.owners))
	for c, u := range r.owners {
		out = append(out, target{userID: u, conn: c})
	}
	return out
}

// send runs outside the registry lock.
func (r *Registry) send(targets []target, data []byte) int {
	delivered := 0
	for _, t := range targets {
		if !t.conn.IsOpen() {
			r.Deregister(t.userID, t.conn)
			continue
		}
		if err := t.conn.Send(data); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"user_id": t.userID,
				"conn_id": t.conn.ID(),
			}).Warn("failed to push to live connection, pruning")
			prometheus.NotificationPushes.WithLabelValues("failed").Inc()
			r.Deregister(t.userID, t.conn)
			continue
		}
		prometheus.NotificationPushes.WithLabelValues("delivered").Inc()
		delivered++
	}
	return delivered
}

func encode(payload interface{}) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode push payload: %w", err)
	}
	return data, nil
}

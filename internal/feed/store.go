package feed

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the notification feed.
type Store interface {
	// Add appends a new unread notification and returns its ID.
	Add(in Input) string

	// MarkRead marks the notification as read. Unknown or already read IDs are ignored.
	MarkRead(id string)

	// MarkAllRead marks every notification as read.
	MarkAllRead()

	// List returns a copy of the feed in insertion order.
	List() []Notification

	// UnreadCount returns the number of unread notifications.
	UnreadCount() int

	// Remove evicts a single notification. It reports whether the ID was present.
	Remove(id string) bool

	// Clear evicts every notification.
	Clear()
}

type store struct {
	mu     sync.RWMutex
	items  []Notification
	unread int

	capacity int
	maxAge   time.Duration
	now      func() time.Time
	newID    func() string
}

var _ Store = (*store)(nil)

func (s *store) Add(in Input) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Notification{
		ID:        s.newID(),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Timestamp: s.now(),
		Link:      in.Link,
		Data:      in.Data,
	}

	s.items = append(s.items, n)
	s.unread++

	s.evict(n.Timestamp)
	return n.ID
}

// evict applies the retention policy. Callers must hold the write lock.
func (s *store) evict(now time.Time) {
	if s.maxAge > 0 {
		cutoff := now.Add(-s.maxAge)
		i := 0
		for i < len(s.items) && s.items[i].Timestamp.Before(cutoff) {
			i++
		}
		s.dropOldest(i)
	}

	if s.capacity > 0 && len(s.items) > s.capacity {
		s.dropOldest(len(s.items) - s.capacity)
	}
}

// dropOldest removes the first n items. Callers must hold the write lock.
func (s *store) dropOldest(n int) {
	for _, item := range s.items[:n] {
		if !item.Read {
			s.unread--
		}
	}

	s.items = slices.Delete(s.items, 0, n)
}

func (s *store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
}

func (s *store) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.items[i].Read {
		return
	}

	s.items[i].Read = true
	s.unread--
}

func (s *store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
	s.unread = 0
}

func (s *store) List() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

func (s *store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unread
}

func (s *store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	if !s.items[i].Read {
		s.unread--
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.unread = 0
}

type config struct {
	capacity int
	maxAge   time.Duration
	now      func() time.Time
	newID    func() string
}

// Option configures a Store.
type Option func(*config)

// New creates an empty, unbounded feed.
func New(opts ...Option) *store {
	cfg := config{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &store{
		capacity: cfg.capacity,
		maxAge:   cfg.maxAge,
		now:      cfg.now,
		newID:    cfg.newID,
	}
}

// WithCapacity keeps at most n notifications, evicting the oldest first.
// Zero or a negative n means unbounded.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithMaxAge evicts notifications older than d whenever a new one is added.
// Zero means no age limit.
func WithMaxAge(d time.Duration) Option {
	return func(c *config) {
		c.maxAge = d
	}
}

// WithClock overrides the time source used for notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

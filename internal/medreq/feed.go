package medreq

import (
	"sync"

	"github.com/google/uuid"

	"rural-health-api-server/internal/models"
)

// Feed fans out full request snapshots to every subscribed dashboard.
// Each subscriber holds a one-slot buffer: when a subscriber lags, the stale
// pending snapshot is replaced with the newest one, so a reader always ends up
// at the latest server state.
type Feed struct {
	mu   sync.Mutex
	subs map[string]*Subscription

	// last is the most recently published snapshot. New subscribers are
	// seeded from it so a write committed while a subscriber was still
	// loading its initial store read is not lost.
	last      []models.MedicineRequest
	published bool
}

func NewFeed() *Feed {
	return &Feed{
		subs: make(map[string]*Subscription),
	}
}

// Subscription is one dashboard's live view of the request collection.
// Close releases it; closing more than once is a no-op.
type Subscription struct {
	id   string
	feed *Feed
	ch   chan []models.MedicineRequest
	once sync.Once
}

// Subscribe registers a new subscriber and seeds it with a first snapshot.
// When anything has been published already, the newest published snapshot
// wins over the caller's initial read: registration and seeding happen under
// the same lock as Publish, so no write can fall between them.
func (f *Feed) Subscribe(initial []models.MedicineRequest) *Subscription {
	sub := &Subscription{
		id:   uuid.New().String(),
		feed: f,
		ch:   make(chan []models.MedicineRequest, 1),
	}

	f.mu.Lock()
	if f.published {
		initial = f.last
	}
	sub.ch <- initial
	f.subs[sub.id] = sub
	f.mu.Unlock()

	return sub
}

// Publish delivers a fresh snapshot to every subscriber.
func (f *Feed) Publish(snapshot []models.MedicineRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = snapshot
	f.published = true

	for _, sub := range f.subs {
		select {
		case sub.ch <- snapshot:
		default:
			// Drop the undelivered snapshot; only the newest one matters.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
}

// Updates is the stream of snapshots. The channel closes when the
// subscription is closed.
func (s *Subscription) Updates() <-chan []models.MedicineRequest {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s.id)
		close(s.ch)
		s.feed.mu.Unlock()
	})
}

package memory

import (
	"sync"
	"time"

	"github.com/lalith-99/huddle/internal/models"
	"go.uber.org/zap"
)

// Store owns every entity table plus the id counter. It is the in-memory
// counterpart of a connection pool: the per-resource stores (UserStore,
// MessageStore, ...) all share one *Store, so they form a single
// consistency domain.
//
// One RWMutex covers all tables. Reads hold the read lock for the whole
// join they assemble, so a derived view never mixes two states.
type Store struct {
	mu sync.RWMutex

	// nextID is shared by all tables. Ids are never reused.
	nextID int64

	users      *table[models.User]
	teams      *table[models.Team]
	channels   *table[models.Channel]
	members    *table[models.TeamMember]
	messages   *table[models.Message]
	videoCalls *table[models.VideoCall]

	logger     *zap.Logger
	now        func() time.Time
	replyDepth int
	seed       *Seed
}

// Option alters the defaults used by NewStore.
type Option interface {
	apply(*Store)
}

type optionFunc func(s *Store)

func (f optionFunc) apply(s *Store) { f(s) }

// WithLogger sets the logger used for debug output on writes.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithClock replaces time.Now for every timestamp the store assigns.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(s *Store) {
		if now != nil {
			s.now = now
		}
	})
}

// WithReplyDepth sets how many reply hops are resolved when a message is
// read. Values below 1 are ignored.
func WithReplyDepth(depth int) Option {
	return optionFunc(func(s *Store) {
		if depth >= 1 {
			s.replyDepth = depth
		}
	})
}

// WithSeed loads seed rows into the store at construction. Ids in the
// seed are kept as given.
func WithSeed(seed *Seed) Option {
	return optionFunc(func(s *Store) {
		s.seed = seed
	})
}

// NewStore returns an empty (or seeded) store. Each call returns an
// isolated instance; there is no package-level state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		nextID:     1,
		users:      newTable[models.User](),
		teams:      newTable[models.Team](),
		channels:   newTable[models.Channel](),
		members:    newTable[models.TeamMember](),
		messages:   newTable[models.Message](),
		videoCalls: newTable[models.VideoCall](),
		logger:     zap.NewNop(),
		now:        time.Now,
		replyDepth: 1,
	}
	for _, opt := range opts {
		opt.apply(s)
	}
	if s.seed != nil {
		s.load(s.seed)
		s.seed = nil
	}
	return s
}

// allocID hands out the next id. Caller must hold s.mu for writing.
func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// reserve moves the counter past id so later inserts cannot collide
// with seeded rows. Caller must hold s.mu for writing.
func (s *Store) reserve(id int64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// Stats is a point-in-time row count per table.
type Stats struct {
	Users      int `json:"users"`
	Teams      int `json:"teams"`
	Channels   int `json:"channels"`
	Members    int `json:"members"`
	Messages   int `json:"messages"`
	VideoCalls int `json:"video_calls"`
}

// Stats reports table sizes. History is never evicted, so these only grow.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:      s.users.len(),
		Teams:      s.teams.len(),
		Channels:   s.channels.len(),
		Members:    s.members.len(),
		Messages:   s.messages.len(),
		VideoCalls: s.videoCalls.len(),
	}
}

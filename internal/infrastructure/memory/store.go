// Package memory is the process-lifetime entity store. Every record lives in a
// map keyed by a generated UUID; lookups by other fields go through secondary
// indexes kept up to date on write.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"projecthub/internal/domain/entities"
)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Store holds all entities. A single RWMutex serializes writers so each
// operation is atomic with respect to every other one.
type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func() string

	users              map[string]entities.User
	userByName         map[string]string
	entrepreneurs      map[string]entities.Entrepreneur
	entrepreneurByUser map[string]string
	groups             map[string]entities.StudentGroup
	groupByUser        map[string]string

	projects     map[string]entities.Project
	projectOrder []string

	interests          map[string]entities.ProjectInterest
	interestsByProject map[string][]string
	interestsByGroup   map[string][]string

	events     map[string]entities.Event
	eventOrder []string
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:                time.Now,
		newID:              uuid.NewString,
		users:              make(map[string]entities.User),
		userByName:         make(map[string]string),
		entrepreneurs:      make(map[string]entities.Entrepreneur),
		entrepreneurByUser: make(map[string]string),
		groups:             make(map[string]entities.StudentGroup),
		groupByUser:        make(map[string]string),
		projects:           make(map[string]entities.Project),
		interests:          make(map[string]entities.ProjectInterest),
		interestsByProject: make(map[string][]string),
		interestsByGroup:   make(map[string][]string),
		events:             make(map[string]entities.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nextID returns an identifier not used by any record. Callers hold s.mu.
func (s *Store) nextID() string {
	for {
		id := s.newID()
		if !s.idInUse(id) {
			return id
		}
	}
}

func (s *Store) idInUse(id string) bool {
	if _, ok := s.users[id]; ok {
		return true
	}
	if _, ok := s.entrepreneurs[id]; ok {
		return true
	}
	if _, ok := s.groups[id]; ok {
		return true
	}
	if _, ok := s.projects[id]; ok {
		return true
	}
	if _, ok := s.interests[id]; ok {
		return true
	}
	_, ok := s.events[id]
	return ok
}

// Records are stored by value; slices are cloned on the way in and out so
// callers can never alias store state.

func cloneGroup(g entities.StudentGroup) entities.StudentGroup {
	g.Members = slices.Clone(g.Members)
	g.Interests = slices.Clone(g.Interests)
	return g
}

func cloneProject(p entities.Project) entities.Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

func cloneInterest(i entities.ProjectInterest) entities.ProjectInterest {
	if i.Message != nil {
		m := *i.Message
		i.Message = &m
	}
	return i
}

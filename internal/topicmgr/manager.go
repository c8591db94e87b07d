package topicmgr

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	ErrInvalidTopic   = errors.New("invalid topic")
	ErrDuplicateTopic = errors.New("topic already registered")
)

// Topic names follow a hierarchical pattern: module.action, e.g. leads.requested.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(\.[a-z][a-z0-9]*)+$`)

// Topic describes one topic on the message bus.
type Topic struct {
	Name        string `json:"name"`
	Module      string `json:"module"`
	Description string `json:"description"`
	Payload     string `json:"payload"`
}

// Manager is a concurrency-safe catalog of topics.
type Manager struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

var defaultManager = NewManager()

// Default returns the process-wide manager typed events register with.
func Default() *Manager {
	return defaultManager
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{topics: make(map[string]Topic)}
}

// Define builds a Topic whose module is the first segment of name.
func Define(name, description, payload string) Topic {
	module, _, _ := strings.Cut(name, ".")
	return Topic{Name: name, Module: module, Description: description, Payload: payload}
}

// Register adds topic to the catalog. Registering an identical topic again is a no-op.
func (m *Manager) Register(topic Topic) error {
	if !namePattern.MatchString(topic.Name) {
		return fmt.Errorf("%w: name %q", ErrInvalidTopic, topic.Name)
	}
	if strings.TrimSpace(topic.Description) == "" {
		return fmt.Errorf("%w: %s has no description", ErrInvalidTopic, topic.Name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.topics[topic.Name]; ok {
		if existing == topic {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateTopic, topic.Name)
	}
	m.topics[topic.Name] = topic
	return nil
}

// MustRegister is Register for package-level definitions.
func (m *Manager) MustRegister(topic Topic) {
	if err := m.Register(topic); err != nil {
		panic("topicmgr: " + err.Error())
	}
}

// Get returns the topic registered under name.
func (m *Manager) Get(name string) (Topic, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.topics[name]
	return t, ok
}

// List returns every topic sorted by name.
func (m *Manager) List() []Topic {
	return m.filter(func(Topic) bool { return true })
}

// ListByModule returns the topics owned by module, sorted by name.
func (m *Manager) ListByModule(module string) []Topic {
	return m.filter(func(t Topic) bool { return t.Module == module })
}

func (m *Manager) filter(keep func(Topic) bool) []Topic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]Topic, 0, len(m.topics))
	for _, t := range m.topics {
		if keep(t) {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

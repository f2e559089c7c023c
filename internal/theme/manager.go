package theme

import (
	"fmt"
	"log/slog"
)

// Store is a persistent key-value store scoped to a single origin.
type Store interface {
	// Get returns the value under key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key.
	Set(key, value string) error
}

// Element is the document root the preference is reflected onto.
type Element interface {
	// Attribute returns the named attribute and whether it is set.
	Attribute(name string) (string, bool)

	// SetAttribute sets the named attribute.
	SetAttribute(name, value string)
}

// ReadySignal registers a callback for the document ready event.
// Callbacks run at most once.
type ReadySignal interface {
	OnReady(fn func())
}

// Manager keeps the stored preference and the root element in step.
type Manager struct {
	store  Store
	root   Element
	logger *slog.Logger
}

// NewManager creates a Manager over the given store and root element.
func NewManager(store Store, root Element) *Manager {
	return &Manager{
		store:  store,
		root:   root,
		logger: slog.Default().With("component", "theme"),
	}
}

// EnsureDefault writes the default preference when the store holds none.
// An existing value is never touched.
func (m *Manager) EnsureDefault() error {
	_, ok, err := m.store.Get(StorageKey)
	if err != nil {
		return fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if ok {
		return nil
	}

	if err := m.store.Set(StorageKey, DefaultPreference.String()); err != nil {
		return fmt.Errorf("write default %s: %w", StorageKey, err)
	}
	m.logger.Debug("stored default preference", "preference", DefaultPreference)
	return nil
}

// Stored returns the stored preference, or light when absent or invalid.
func (m *Manager) Stored() (Preference, error) {
	raw, ok, err := m.store.Get(StorageKey)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if !ok {
		return DefaultPreference, nil
	}
	p, perr := Parse(raw)
	if perr != nil {
		m.logger.Warn("ignoring invalid stored preference", "value", raw)
		return DefaultPreference, nil
	}
	return p, nil
}

// Current returns the preference shown on the root element, or light when
// the attribute is unset or invalid.
func (m *Manager) Current() Preference {
	return orDefault(m.root.Attribute(Attribute))
}

// Apply sets the root attribute to the stored preference.
func (m *Manager) Apply() error {
	p, err := m.Stored()
	if err != nil {
		return err
	}
	m.root.SetAttribute(Attribute, p.String())
	m.logger.Debug("applied preference", "preference", p)
	return nil
}

// Toggle flips the preference shown on the root element and persists it.
// An unset or empty attribute counts as light. The raw attribute is flipped
// as is: only an exact light becomes dark, anything else becomes light.
// The element is updated before the store write, so a failed write leaves
// the new value visible but not persisted.
func (m *Manager) Toggle() (Preference, error) {
	current := DefaultPreference
	if raw, ok := m.root.Attribute(Attribute); ok && raw != "" {
		current = Preference(raw)
	}
	next := current.Toggled()
	m.root.SetAttribute(Attribute, next.String())

	if err := m.store.Set(StorageKey, next.String()); err != nil {
		return next, fmt.Errorf("write %s: %w", StorageKey, err)
	}
	m.logger.Debug("toggled preference", "preference", next)
	return next, nil
}

// BindReady applies the stored preference once the signal fires.
func (m *Manager) BindReady(signal ReadySignal) {
	signal.OnReady(func() {
		if err := m.Apply(); err != nil {
			m.logger.Error("failed to apply preference", "error", err)
		}
	})
}

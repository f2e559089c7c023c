package theme_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themectl/internal/document"
	"github.com/jmylchreest/themectl/internal/store"
	"github.com/jmylchreest/themectl/internal/theme"
)

func newManager(t *testing.T) (*theme.Manager, *store.Memory, *document.Document) {
	t.Helper()
	st := store.NewMemory()
	doc := document.NewDetached()
	return theme.NewManager(st, doc.Root()), st, doc
}

func storedValue(t *testing.T, st theme.Store) string {
	t.Helper()
	v, ok, err := st.Get(theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok, "store should hold a preference")
	return v
}

func attribute(doc *document.Document) (string, bool) {
	return doc.Root().Attribute(theme.Attribute)
}

func TestEnsureDefault_EmptyStore(t *testing.T) {
	m, st, _ := newManager(t)

	require.NoError(t, m.EnsureDefault())
	assert.Equal(t, "light", storedValue(t, st))
}

func TestEnsureDefault_Idempotent(t *testing.T) {
	for _, v := range []string{"light", "dark", "sepia"} {
		t.Run(v, func(t *testing.T) {
			m, st, _ := newManager(t)
			require.NoError(t, st.Set(theme.StorageKey, v))

			require.NoError(t, m.EnsureDefault())
			require.NoError(t, m.EnsureDefault())
			assert.Equal(t, v, storedValue(t, st))
		})
	}
}

func TestApplyOnReady(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   string
	}{
		{name: "light", stored: ptr("light"), want: "light"},
		{name: "dark", stored: ptr("dark"), want: "dark"},
		{name: "empty store", stored: nil, want: "light"},
		{name: "invalid value", stored: ptr("sepia"), want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, st, doc := newManager(t)
			if tt.stored != nil {
				require.NoError(t, st.Set(theme.StorageKey, *tt.stored))
			}

			m.BindReady(doc)
			_, ok := attribute(doc)
			assert.False(t, ok, "apply must wait for ready")

			doc.Ready()
			got, ok := attribute(doc)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitThenApply(t *testing.T) {
	m, st, doc := newManager(t)

	require.NoError(t, m.EnsureDefault())
	assert.Equal(t, "light", storedValue(t, st))

	m.BindReady(doc)
	doc.Ready()
	got, _ := attribute(doc)
	assert.Equal(t, "light", got)
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name      string
		attribute *string
		want      theme.Preference
	}{
		{name: "light to dark", attribute: ptr("light"), want: theme.Dark},
		{name: "dark to light", attribute: ptr("dark"), want: theme.Light},
		{name: "unset treated as light", attribute: nil, want: theme.Dark},
		{name: "empty treated as light", attribute: ptr(""), want: theme.Dark},
		{name: "unknown value flips to light", attribute: ptr("sepia"), want: theme.Light},
		{name: "padded light flips to light", attribute: ptr(" Light "), want: theme.Light},
		{name: "uppercase light flips to light", attribute: ptr("LIGHT"), want: theme.Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, st, doc := newManager(t)
			if tt.attribute != nil {
				doc.Root().SetAttribute(theme.Attribute, *tt.attribute)
			}

			got, err := m.Toggle()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			attr, _ := attribute(doc)
			assert.Equal(t, tt.want.String(), attr)
			assert.Equal(t, tt.want.String(), storedValue(t, st))
		})
	}
}

func TestToggle_TwiceRestoresState(t *testing.T) {
	for _, start := range []string{"light", "dark"} {
		t.Run(start, func(t *testing.T) {
			m, st, doc := newManager(t)
			require.NoError(t, st.Set(theme.StorageKey, start))
			m.BindReady(doc)
			doc.Ready()

			_, err := m.Toggle()
			require.NoError(t, err)
			_, err = m.Toggle()
			require.NoError(t, err)

			attr, _ := attribute(doc)
			assert.Equal(t, start, attr)
			assert.Equal(t, start, storedValue(t, st))
		})
	}
}

func TestToggle_ReadsElementNotStore(t *testing.T) {
	m, st, doc := newManager(t)
	require.NoError(t, st.Set(theme.StorageKey, "dark"))

	// No apply has happened, so the element still shows the default.
	got, err := m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
	assert.Equal(t, theme.Dark, m.Current())
	attr, _ := attribute(doc)
	assert.Equal(t, "dark", attr)
}

var errUnavailable = errors.New("storage disabled")

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errUnavailable }
func (failingStore) Set(string, string) error         { return errUnavailable }

func TestStoreErrorsPropagate(t *testing.T) {
	doc := document.NewDetached()
	m := theme.NewManager(failingStore{}, doc.Root())

	require.ErrorIs(t, m.EnsureDefault(), errUnavailable)
	require.ErrorIs(t, m.Apply(), errUnavailable)

	_, err := m.Stored()
	require.ErrorIs(t, err, errUnavailable)

	got, err := m.Toggle()
	require.ErrorIs(t, err, errUnavailable)
	assert.Equal(t, theme.Dark, got)
}

func ptr(s string) *string {
	return &s
}

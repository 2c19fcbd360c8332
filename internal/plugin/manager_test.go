package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlugin struct {
	name    string
	initErr error
	inits   *[]string
	stopped bool
}

func (s *stubPlugin) Name() string { return s.name }
func (s *stubPlugin) Initialize(EditorAPI) error {
	*s.inits = append(*s.inits, s.name)
	return s.initErr
}
func (s *stubPlugin) Shutdown() error { s.stopped = true; return nil }

func TestRegisterRejectsDuplicatesAndEmptyNames(t *testing.T) {
	var inits []string
	m := NewManager()
	require.NoError(t, m.Register(&stubPlugin{name: "a", inits: &inits}))
	assert.Error(t, m.Register(&stubPlugin{name: "a", inits: &inits}))
	assert.Error(t, m.Register(&stubPlugin{name: "", inits: &inits}))

	_, ok := m.GetPlugin("a")
	assert.True(t, ok)
}

func TestInitializeInRegistrationOrder(t *testing.T) {
	var inits []string
	m := NewManager()
	failing := &stubPlugin{name: "b", initErr: errors.New("boom"), inits: &inits}
	last := &stubPlugin{name: "c", inits: &inits}
	require.NoError(t, m.Register(&stubPlugin{name: "a", inits: &inits}))
	require.NoError(t, m.Register(failing))
	require.NoError(t, m.Register(last))

	err := m.InitializePlugins(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin 'b'")
	assert.Equal(t, []string{"a", "b", "c"}, inits, "a failing plugin does not stop the rest")

	m.ShutdownPlugins()
	assert.True(t, last.stopped)
}

package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/dice"
)

// TurnHook is the global Lua function called after every dispatched command.
const TurnHook = "on_turn"

// SpawnRequest describes a character a script asks to create.
type SpawnRequest struct {
	ID       int64
	Name     string
	Location int64
	Friendly bool
	Health   int
	GDesc    string
	Message  string
	// FollowCurrent makes the new character follow the acting player.
	FollowCurrent bool
}

// Manager owns one sandboxed LState holding every loaded rule script and
// exposes hook dispatch.
//
// Manager is safe for concurrent use; calls into the VM are serialized.
type Manager struct {
	mu     sync.Mutex
	state  *lua.LState
	cancel context.CancelFunc
	limit  int
	roller *dice.Roller
	logger *zap.Logger

	// Injected after construction. nil = the colony.* binding reports failure.
	DamagePlayer   func(name string, amount int) error
	SpawnCharacter func(req SpawnRequest) error
	PlayerLocation func(name string) (int64, bool)
}

// NewManager creates a Manager with no scripts loaded.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a non-nil Manager; panics on nil arguments.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting.NewManager: roller must not be nil")
	}
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{roller: roller, logger: logger}
}

// LoadDir creates a fresh sandboxed VM, registers the colony module, then
// executes every *.lua file in scriptDir in lexicographic order. The new VM
// replaces any previously loaded one only when every file loads.
//
// Precondition: scriptDir must be a readable directory; instLimit >= 0.
// Postcondition: returns an error on a read or Lua load failure.
func (m *Manager) LoadDir(scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", scriptDir, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L)
	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	m.closeLocked()
	m.state = L
	m.cancel = cancel
	m.limit = instLimit
	m.mu.Unlock()

	m.logger.Info("rule scripts loaded",
		zap.String("dir", scriptDir),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// Loaded reports whether a VM is present.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state != nil
}

// CallHook calls the named Lua global function with a fresh instruction
// budget. Returns (LNil, nil) if no VM is loaded or the hook is not
// defined. Lua runtime errors are logged at Warn level and never
// propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	L := m.state
	if L == nil {
		return lua.LNil, nil
	}
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	m.cancel()
	m.cancel = Arm(L, m.limit)

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// OnTurn runs the on_turn hook with the last command's code, argument and
// outcome.
func (m *Manager) OnTurn(code, arg string, ok bool) error {
	_, err := m.CallHook(TurnHook, lua.LString(code), lua.LString(arg), lua.LBool(ok))
	return err
}

// Close releases the VM. CallHook afterwards is a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

func (m *Manager) closeLocked() {
	if m.state == nil {
		return
	}
	m.cancel()
	m.state.Close()
	m.state = nil
	m.cancel = nil
}

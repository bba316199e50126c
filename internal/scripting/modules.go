package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules registers the colony Lua table into L:
//
//	colony.log(msg)
//	colony.roll(expr) -> total
//	colony.damage_player(name, amount) -> ok, err
//	colony.spawn_character{id=, name=, location=, friendly=, health=,
//	    gdesc=, message=, follow_current=} -> ok, err
//	colony.player_location(name) -> space id or nil
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: colony global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	colony := L.NewTable()
	L.SetFuncs(colony, map[string]lua.LGFunction{
		"log":             m.luaLog,
		"roll":            m.luaRoll,
		"damage_player":   m.luaDamagePlayer,
		"spawn_character": m.luaSpawnCharacter,
		"player_location": m.luaPlayerLocation,
	})
	L.SetGlobal("colony", colony)
}

func (m *Manager) luaLog(L *lua.LState) int {
	m.logger.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

func (m *Manager) luaRoll(L *lua.LState) int {
	res, err := m.roller.RollExpr(L.CheckString(1))
	if err != nil {
		L.RaiseError("colony.roll: %s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(res.Total()))
	return 1
}

// fail pushes the (false, message) pair returned by mutating bindings.
func fail(L *lua.LState, msg string) int {
	L.Push(lua.LFalse)
	L.Push(lua.LString(msg))
	return 2
}

func (m *Manager) luaDamagePlayer(L *lua.LState) int {
	name := L.CheckString(1)
	amount := L.CheckInt(2)
	if m.DamagePlayer == nil {
		return fail(L, "damage_player unavailable")
	}
	if err := m.DamagePlayer(name, amount); err != nil {
		return fail(L, err.Error())
	}
	L.Push(lua.LTrue)
	return 1
}

func (m *Manager) luaSpawnCharacter(L *lua.LState) int {
	tbl := L.CheckTable(1)
	if m.SpawnCharacter == nil {
		return fail(L, "spawn_character unavailable")
	}
	req := SpawnRequest{
		ID:            int64(lua.LVAsNumber(tbl.RawGetString("id"))),
		Name:          lua.LVAsString(tbl.RawGetString("name")),
		Location:      int64(lua.LVAsNumber(tbl.RawGetString("location"))),
		Friendly:      lua.LVAsBool(tbl.RawGetString("friendly")),
		Health:        int(lua.LVAsNumber(tbl.RawGetString("health"))),
		GDesc:         lua.LVAsString(tbl.RawGetString("gdesc")),
		Message:       lua.LVAsString(tbl.RawGetString("message")),
		FollowCurrent: lua.LVAsBool(tbl.RawGetString("follow_current")),
	}
	if req.Name == "" {
		return fail(L, "spawn_character: name is required")
	}
	if err := m.SpawnCharacter(req); err != nil {
		return fail(L, err.Error())
	}
	L.Push(lua.LTrue)
	return 1
}

func (m *Manager) luaPlayerLocation(L *lua.LState) int {
	name := L.CheckString(1)
	if m.PlayerLocation == nil {
		L.Push(lua.LNil)
		return 1
	}
	loc, ok := m.PlayerLocation(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(loc))
	return 1
}

package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strand/value"
)

// TypeName is the Lua metatable name for the string value userdata.
const TypeName = "strand.string"

// Register installs the strand string type into a Lua state. Indexing
// uses the engine's 0-based element positions: s[0] reads the first
// character, s[i] = n writes ordinal n at position i (a byte-range
// ordinal writes a raw byte and may promote the underlying chunk).
func Register(L *lua.LState) {
	mt := L.NewTypeMetatable(TypeName)
	L.SetField(mt, "__index", L.NewFunction(strIndex))
	L.SetField(mt, "__newindex", L.NewFunction(strNewIndex))
	L.SetField(mt, "__len", L.NewFunction(strLen))
	L.SetField(mt, "__tostring", L.NewFunction(strToString))
	L.SetField(mt, "__concat", L.NewFunction(strConcat))
}

// New wraps a string value as Lua userdata.
func New(L *lua.LState, s *value.String) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(TypeName))
	return ud
}

// Check extracts a string value from the argument at position n,
// raising a Lua argument error if it is not one.
func Check(L *lua.LState, n int) *value.String {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*value.String); ok {
		return s
	}
	L.ArgError(n, "strand.string expected")
	return nil
}

// methods are the named operations reachable through __index.
var methods = map[string]lua.LGFunction{
	"len":    strLen,
	"width":  strWidth,
	"byte":   strByte,
	"append": strAppend,
}

func strIndex(L *lua.LState) int {
	s := Check(L, 1)
	key := L.Get(2)

	if n, ok := key.(lua.LNumber); ok {
		item, err := s.Item(int(n))
		if err != nil {
			L.RaiseError("%s", err)
			return 0
		}
		L.Push(lua.LString(item.String()))
		return 1
	}

	if name, ok := key.(lua.LString); ok {
		if fn, ok := methods[string(name)]; ok {
			L.Push(L.NewFunction(fn))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

func strNewIndex(L *lua.LState) int {
	s := Check(L, 1)
	idx := L.CheckInt(2)

	c, err := Bridge{}.ToChar(L.Get(3))
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	s.SetChar(idx, c)
	return 0
}

func strLen(L *lua.LState) int {
	s := Check(L, 1)
	L.Push(lua.LNumber(s.Len()))
	return 1
}

func strWidth(L *lua.LState) int {
	s := Check(L, 1)
	L.Push(lua.LNumber(s.Width()))
	return 1
}

func strByte(L *lua.LState) int {
	s := Check(L, 1)
	idx := L.CheckInt(2)

	c, err := s.CharAt(idx)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	if c.IsByte() {
		L.Push(lua.LNumber(c.Byte()))
	} else {
		L.Push(lua.LNumber(c.Rune()))
	}
	return 1
}

func strAppend(L *lua.LState) int {
	s := Check(L, 1)
	if err := s.AppendValue(unwrap(L.Get(2)), Bridge{}); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

// unwrap unpacks a strand.string userdata so appends take the shared
// buffer path instead of flattening through text conversion.
func unwrap(lv lua.LValue) any {
	if ud, ok := lv.(*lua.LUserData); ok {
		if s, ok := ud.Value.(*value.String); ok {
			return s
		}
	}
	return lv
}

func strToString(L *lua.LState) int {
	s := Check(L, 1)
	L.Push(lua.LString(s.String()))
	return 1
}

func strConcat(L *lua.LState) int {
	out := value.New()
	for n := 1; n <= 2; n++ {
		if err := out.AppendValue(unwrap(L.Get(n)), Bridge{}); err != nil {
			L.RaiseError("%s", err)
			return 0
		}
	}
	L.Push(New(L, out))
	return 1
}

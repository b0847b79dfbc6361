// Package script loads Lua styling hooks.
//
// A style script defines a global function
//
//	function line_attr(line, text, current)
//	  return { fg = "#rrggbb", bg = 4, bold = true }
//	end
//
// which is called with the 1-based line number, the line text, and whether
// the line holds the cursor. Colors may be hex strings, color names, or
// 0-255 palette indexes. Missing fields fall back to the view's built-in
// attribute resolution, as does any script error.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lineview/internal/style"
	"github.com/dshills/lineview/internal/view"
)

// StyleScript is a Lua-backed attribute resolver.
//
// The viewer is single-threaded, so one Lua state serves all calls.
type StyleScript struct {
	state    *lua.LState
	fn       *lua.LFunction
	fallback view.AttrFunc
}

// Load runs the script at path and binds its line_attr function.
// fallback supplies the styles used when the script declines or fails;
// nil selects the view's default resolution.
func Load(path string, fallback view.AttrFunc) (*StyleScript, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: loading %s: %w", path, err)
	}

	fn, ok := L.GetGlobal("line_attr").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("script: %s does not define line_attr", path)
	}

	return &StyleScript{state: L, fn: fn, fallback: fallback}, nil
}

// Close releases the Lua state.
func (s *StyleScript) Close() {
	s.state.Close()
}

// Attr resolves a line's style through the script. It satisfies view.AttrFunc.
func (s *StyleScript) Attr(v *view.View, line int) style.Style {
	base := s.base(v, line)

	err := s.state.CallByParam(
		lua.P{Fn: s.fn, NRet: 1, Protect: true},
		lua.LNumber(line+1),
		lua.LString(v.Document().Line(line)),
		lua.LBool(line == v.CursorLine()),
	)
	if err != nil {
		return base
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return base
	}

	st := base
	if c, ok := colorValue(tbl.RawGetString("fg")); ok {
		st.Foreground = c
	}
	if c, ok := colorValue(tbl.RawGetString("bg")); ok {
		st.Background = c
	}
	if b, ok := tbl.RawGetString("bold").(lua.LBool); ok {
		st.Bold = bool(b)
	}
	return st
}

// base returns the non-script style for a line: the fallback if one was
// given, otherwise the theme's cursor/plain split.
func (s *StyleScript) base(v *view.View, line int) style.Style {
	if s.fallback != nil {
		return s.fallback(v, line)
	}
	if line == v.CursorLine() {
		return v.Theme().Cursor
	}
	return v.Theme().Line
}

// namedColors maps the color names scripts may use.
var namedColors = map[string]style.Color{
	"default": style.ColorDefault,
	"black":   style.ColorBlack,
	"white":   style.ColorWhite,
	"yellow":  style.ColorYellow,
	"blue":    style.ColorBlue,
	"gray":    style.ColorGray,
}

// colorValue converts a Lua value to a color: strings are names or hex,
// numbers are palette indexes.
func colorValue(lv lua.LValue) (style.Color, bool) {
	switch v := lv.(type) {
	case lua.LString:
		if c, ok := namedColors[string(v)]; ok {
			return c, true
		}
		c, err := style.FromHex(string(v))
		if err != nil {
			return style.Color{}, false
		}
		return c, true

	case lua.LNumber:
		n := int(v)
		if n < 0 || n > 255 {
			return style.Color{}, false
		}
		return style.FromIndex(uint8(n)), true

	default:
		return style.Color{}, false
	}
}

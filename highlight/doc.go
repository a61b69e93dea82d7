// Package highlight maps the closed token schema to terminal styles and
// renders Lua source with them. It owns no terminal or file I/O: callers
// hand in bytes and writers, styling stays a pure string transformation.
package highlight

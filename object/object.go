/*
File    : lc3/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value representation produced by
// the evaluator: the Object interface, its concrete variants, the
// Environment scope chain, and the Hashable/HashKey machinery backing
// hash literals.
package object

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akashmaji946/lc3/ast"
)

// Type is the stable type tag every Object reports via Type(). These
// strings appear verbatim inside runtime error messages (e.g. "INTEGER +
// BOOLEAN"), so they must not be renamed casually.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	STRING_OBJ       Type = "STRING"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
	BUILTIN_OBJ      Type = "BUILTIN"
	ARRAY_OBJ        Type = "ARRAY"
	HASH_OBJ         Type = "HASH"
	QUOTE_OBJ        Type = "QUOTE"
	MACRO_OBJ        Type = "MACRO"
)

// Object is the interface every lc3 runtime value implements.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer wraps a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps a true/false value. The evaluator hands out two shared
// singletons for this type rather than allocating fresh Booleans.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String wraps a string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_OBJ }
func (s *String) Inspect() string { return s.Value }

// Null is lc3's single absent-value type. Like Boolean's singletons, the
// evaluator hands out one shared Null instance.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue wraps the value carried by a `return` statement so that
// Eval can unwind nested blocks without unwinding the outermost call
// frame. It is never itself returned to the caller of Eval at top level;
// the program and function-call boundaries unwrap it.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error wraps a runtime error message. Like ReturnValue, it short-
// circuits evaluation: once produced, it propagates unevaluated up
// through every enclosing Eval call until something catches it (nothing
// in lc3 does, so it rides all the way to the top).
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Function is a user-defined closure: its parameter list, body, and the
// Environment active at the point of definition (captured by reference,
// not copied, so that later `let`s in an enclosing scope become visible
// to every closure holding it).
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}

// BuiltinFunction is the Go function signature backing a Builtin. Errors
// are reported by returning an *Error, never by panicking.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a host-implemented function (len, first, last, rest,
// push, puts) so it can be stored and looked up as an ordinary Object.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Array is an ordered, heterogeneous sequence of Objects.
type Array struct {
	Elements []Object
}

func (a *Array) Type() Type { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out bytes.Buffer
	elems := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		elems = append(elems, e.Inspect())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashKey is the stable, content-derived lookup key for a hashable
// Object: a (type tag, 64-bit content hash) pair, not the Object's
// pointer identity. Two distinct Integer objects holding the same value
// produce the same HashKey, and therefore collide (correctly) as the
// same hash-literal key.
type HashKey struct {
	Type  Type
	Value uint64
}

// Hashable is implemented by every Object type that may be used as a
// hash-literal key: Integer, Boolean, String.
type Hashable interface {
	HashKey() HashKey
}

func (i *Integer) HashKey() HashKey {
	return HashKey{Type: i.Type(), Value: uint64(i.Value)}
}

func (b *Boolean) HashKey() HashKey {
	var v uint64
	if b.Value {
		v = 1
	}
	return HashKey{Type: b.Type(), Value: v}
}

func (s *String) HashKey() HashKey {
	h := fnv.New64a()
	h.Write([]byte(s.Value))
	return HashKey{Type: s.Type(), Value: h.Sum64()}
}

// HashPair keeps both the original key Object (for Inspect) and the
// value Object stored under it.
type HashPair struct {
	Key   Object
	Value Object
}

// Hash is lc3's map type. Unlike the original implementation's
// std::map-backed hash (which iterates in sorted key order), Hash keeps
// an explicit Order slice recording first-insertion order of each
// HashKey, so Inspect and any future iteration construct see keys in the
// order they were written — spec.md's ordering requirement for hash
// literals.
type Hash struct {
	Pairs map[HashKey]HashPair
	Order []HashKey
}

// NewHash returns an empty, ready-to-use Hash.
func NewHash() *Hash {
	return &Hash{Pairs: make(map[HashKey]HashPair)}
}

// Set stores key/value under key's HashKey, recording insertion order
// only the first time a given key is seen; re-setting an existing key
// updates its value in place without moving its position.
func (h *Hash) Set(key Hashable, keyObj, value Object) {
	hk := key.HashKey()
	if _, exists := h.Pairs[hk]; !exists {
		h.Order = append(h.Order, hk)
	}
	h.Pairs[hk] = HashPair{Key: keyObj, Value: value}
}

// Get looks up the value stored under key.
func (h *Hash) Get(key Hashable) (Object, bool) {
	pair, ok := h.Pairs[key.HashKey()]
	if !ok {
		return nil, false
	}
	return pair.Value, true
}

func (h *Hash) Type() Type { return HASH_OBJ }
func (h *Hash) Inspect() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(h.Order))
	for _, hk := range h.Order {
		pair := h.Pairs[hk]
		pairs = append(pairs, fmt.Sprintf("%s: %s", pair.Key.Inspect(), pair.Value.Inspect()))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}

// Quote wraps an unevaluated AST node produced by `quote(...)`. It only
// ever exists transiently, as the value a macro body returns to splice
// a new node back into the call site it replaces.
type Quote struct {
	Node ast.Node
}

func (q *Quote) Type() Type      { return QUOTE_OBJ }
func (q *Quote) Inspect() string { return "QUOTE(" + q.Node.String() + ")" }

// Macro is a compile-time-only closure bound by `let name = macro(...)
// {...};`. Its Env is the environment active at definition time, exactly
// like Function's, but its parameters are always bound to Quote objects
// rather than evaluated values.
type Macro struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (m *Macro) Type() Type { return MACRO_OBJ }
func (m *Macro) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("macro(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(m.Body.String())
	out.WriteString("\n}")
	return out.String()
}

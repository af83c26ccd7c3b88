// Package property implements the typed, keyed property store that
// backs every host-side object a plugin can see (spec.md §4.1).
//
// Storage is cell-based: each value lives in its own heap-allocated
// cell, referenced by pointer from the owning prop's cell slice, so
// that a pointer handed to a plugin through Address remains valid
// across further Add/Update calls to other properties (growing the
// prop map or a prop's cell slice never moves an existing cell).
package property

import (
	"fmt"
)

// Type is the declared type of a property value.
type Type int

const (
	Int Type = iota
	Double
	String
	Pointer
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	case Pointer:
		return "pointer"
	}
	return "unknown"
}

// Variable is the Dim value that marks a property as a variable-length
// sequence (appended to via Update with index == current length).
const Variable = 0

// cell is the stable-address backing storage for a single value.
type cell struct {
	i int32
	d float64
	s []byte // UTF-8, NUL-terminated
	p uintptr
}

// Value is a boxed property value as returned by Get.
type Value struct {
	Type Type
	I    int32
	D    float64
	S    string
	P    uintptr
}

func valueOf(typ Type, c *cell) Value {
	switch typ {
	case Int:
		return Value{Type: Int, I: c.i}
	case Double:
		return Value{Type: Double, D: c.d}
	case String:
		s := c.s
		if n := len(s); n > 0 && s[n-1] == 0 {
			s = s[:n-1]
		}
		return Value{Type: String, S: string(s)}
	case Pointer:
		return Value{Type: Pointer, P: c.p}
	}
	panic("property: unreachable type")
}

func (c *cell) set(typ Type, v Value) {
	switch typ {
	case Int:
		c.i = v.I
	case Double:
		c.d = v.D
	case String:
		b := make([]byte, len(v.S)+1)
		copy(b, v.S)
		c.s = b
	case Pointer:
		c.p = v.P
	}
}

// prop is a single named property: its declared type, declared
// dimension (Variable for a growable sequence), and backing cells.
type prop struct {
	typ  Type
	dim  int // Variable (0), 1 (scalar) or N (fixed tuple)
	cell []*cell
}

// Store is a property set: a name-keyed map of props with stable
// per-cell addresses. The zero value is not usable; use NewStore.
type Store struct {
	schema *Schema
	order  []string
	props  map[string]*prop
}

// NewStore creates an empty store validated against schema. schema may
// be nil, in which case Add accepts any name/type/dim combination
// without validation (used for ad hoc or test stores).
func NewStore(schema *Schema) *Store {
	return &Store{schema: schema, props: make(map[string]*prop)}
}

// Add creates a new property. typ and dim must match the Schema entry
// for name when the store has a schema; for names whose schema entry
// allows more than one type (Default, Min, Max, DisplayMin, DisplayMax),
// typ selects the concrete type for this object's property set.
//
// If replace is false and name already exists, Add returns ErrExists.
// All cells are initialized to the type's zero value; callers seed
// real defaults with Update.
func (s *Store) Add(name string, typ Type, dim int, replace bool) error {
	if s.schema != nil {
		if err := s.schema.validate(name, typ, dim); err != nil {
			return err
		}
	}
	if _, ok := s.props[name]; ok {
		if !replace {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
	} else {
		s.order = append(s.order, name)
	}
	n := dim
	if n == Variable {
		n = 0
	}
	cells := make([]*cell, n)
	for i := range cells {
		cells[i] = &cell{}
	}
	s.props[name] = &prop{typ: typ, dim: dim, cell: cells}
	return nil
}

// Update writes v into the cell at index. For a Variable-dimension
// property, index == current length appends a new cell; any other
// out-of-range index is an error.
func (s *Store) Update(name string, index int, v Value) error {
	p, ok := s.props[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if v.Type != p.typ {
		return fmt.Errorf("%w: %s expects %s, got %s", ErrValue, name, p.typ, v.Type)
	}
	if s.schema != nil {
		if err := s.schema.validateValue(name, v); err != nil {
			return err
		}
	}
	switch {
	case index < 0:
		return fmt.Errorf("%w: %s[%d]", ErrBadIndex, name, index)
	case index < len(p.cell):
		p.cell[index].set(p.typ, v)
		return nil
	case index == len(p.cell) && p.dim == Variable:
		p.cell = append(p.cell, &cell{})
		p.cell[index].set(p.typ, v)
		return nil
	default:
		return fmt.Errorf("%w: %s[%d]", ErrBadIndex, name, index)
	}
}

// Get returns the value stored at index.
func (s *Store) Get(name string, index int) (Value, error) {
	p, ok := s.props[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if index < 0 || index >= len(p.cell) {
		return Value{}, fmt.Errorf("%w: %s[%d]", ErrBadIndex, name, index)
	}
	return valueOf(p.typ, p.cell[index]), nil
}

// Length returns the number of values currently stored for name: 1 for
// a scalar, the declared N for a fixed tuple, or the current element
// count for a variable-length property.
func (s *Store) Length(name string) (int, error) {
	p, ok := s.props[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return len(p.cell), nil
}

// Contains reports whether name has been added to the store.
func (s *Store) Contains(name string) bool {
	_, ok := s.props[name]
	return ok
}

// Type returns the declared type of name.
func (s *Store) Type(name string) (Type, error) {
	p, ok := s.props[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return p.typ, nil
}

// Names returns every property name in the store, in Add order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Address returns a pointer to the backing cell at index, suitable for
// handing to a plugin across the simulated ABI. The pointer is stable
// until the next Update to that cell or destruction of the store.
func (s *Store) Address(name string, index int) (any, error) {
	p, ok := s.props[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	if index < 0 || index >= len(p.cell) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrBadIndex, name, index)
	}
	c := p.cell[index]
	switch p.typ {
	case Int:
		return &c.i, nil
	case Double:
		return &c.d, nil
	case String:
		return &c.s, nil
	case Pointer:
		return &c.p, nil
	}
	panic("property: unreachable type")
}

// Reset is a no-op: this host has no UI to revert a value to, so
// resetting a property leaves its current value untouched (spec.md
// §4.4).
func (s *Store) Reset(name string) error {
	if !s.Contains(name) {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return nil
}

// Package property declares which fields of a type take part in serialization.
package property

import (
	"reflect"
)

// Descriptor identifies one serializable field of an owning type.
// Descriptors are immutable and safe to share between goroutines.
type Descriptor interface {
	// Name is the member name used on the wire.
	Name() string
	// Owner is the type the field belongs to.
	Owner() reflect.Type
	// Type is the declared type of the field, used as the dispatch key.
	Type() reflect.Type
	// Get reads the field from owner, a value of Owner().
	Get(owner reflect.Value) reflect.Value
	// Set writes value, a value of Type(), into owner. owner must be addressable.
	Set(owner reflect.Value, value reflect.Value)
}

var (
	_ Descriptor = fieldProperty[struct{}, int]{}
	_ Descriptor = accessorProperty[struct{}, int]{}
)

type fieldProperty[C, T any] struct {
	name  string
	field func(*C) *T
}

// Make creates a descriptor from a function returning the address of the
// field inside its owner:
//
//	property.Make(func(p *Point) *float64 { return &p.X }, "x")
func Make[C, T any](field func(*C) *T, name string) Descriptor {
	return fieldProperty[C, T]{name: name, field: field}
}

func (p fieldProperty[C, T]) Name() string {
	return p.name
}

func (p fieldProperty[C, T]) Owner() reflect.Type {
	return reflect.TypeFor[C]()
}

func (p fieldProperty[C, T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (p fieldProperty[C, T]) Get(owner reflect.Value) reflect.Value {
	return reflect.ValueOf(p.field(ownerPtr[C](owner))).Elem()
}

func (p fieldProperty[C, T]) Set(owner reflect.Value, value reflect.Value) {
	reflect.ValueOf(p.field(ownerPtr[C](owner))).Elem().Set(value)
}

type accessorProperty[C, T any] struct {
	name string
	get  func(*C) T
	set  func(*C, T)
}

// MakeAccessor creates a descriptor from a getter and setter pair. Use it
// when the value is computed or kept somewhere a field pointer cannot reach.
func MakeAccessor[C, T any](get func(*C) T, set func(*C, T), name string) Descriptor {
	return accessorProperty[C, T]{name: name, get: get, set: set}
}

func (p accessorProperty[C, T]) Name() string {
	return p.name
}

func (p accessorProperty[C, T]) Owner() reflect.Type {
	return reflect.TypeFor[C]()
}

func (p accessorProperty[C, T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (p accessorProperty[C, T]) Get(owner reflect.Value) reflect.Value {
	v := p.get(ownerPtr[C](owner))
	return reflect.ValueOf(&v).Elem()
}

func (p accessorProperty[C, T]) Set(owner reflect.Value, value reflect.Value) {
	var v T
	reflect.ValueOf(&v).Elem().Set(value)
	p.set(ownerPtr[C](owner), v)
}

// ownerPtr returns a pointer to owner, copying it first when the value is
// not addressable. Reads through a copy never touch the caller's value.
func ownerPtr[C any](owner reflect.Value) *C {
	if owner.CanAddr() {
		return owner.Addr().Interface().(*C)
	}

	c := new(C)
	reflect.ValueOf(c).Elem().Set(owner)
	return c
}

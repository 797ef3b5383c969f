package property

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

var (
	ErrEmptyName         = errors.New("property: empty name")
	ErrDuplicateProperty = errors.New("property: duplicate name")
	ErrForeignProperty   = errors.New("property: descriptor belongs to another type")
)

// List is the ordered set of descriptors a type declares. Order is the
// member order on output and the visiting order in both directions.
type List []Descriptor

// Names returns the descriptor names in declaration order.
func (l List) Names() []string {
	return lo.Map(
		l, func(d Descriptor, _ int) string {
			return d.Name()
		},
	)
}

// Lookup returns the first descriptor with the given name.
func (l List) Lookup(name string) (Descriptor, bool) {
	return lo.Find(
		l, func(d Descriptor) bool {
			return d.Name() == name
		},
	)
}

// Describable is implemented by types that opt in to generic serialization.
// Properties is called on a zero value and must not depend on instance state.
type Describable interface {
	Properties() List
}

var describableType = reflect.TypeFor[Describable]()

// HasSerializableProperties reports whether t, or a pointer to t, declares
// a property list. Pointer and interface types never qualify themselves;
// they are resolved through their element or dynamic type.
func HasSerializableProperties(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}

	return t.Implements(describableType) || reflect.PointerTo(t).Implements(describableType)
}

// Has is the generic form of HasSerializableProperties.
func Has[T any]() bool {
	return HasSerializableProperties(reflect.TypeFor[T]())
}

// Of returns the property list declared by t.
func Of(t reflect.Type) (List, bool) {
	if !HasSerializableProperties(t) {
		return nil, false
	}

	var d Describable
	if t.Implements(describableType) {
		d = reflect.Zero(t).Interface().(Describable)
	} else {
		d = reflect.New(t).Interface().(Describable)
	}

	return d.Properties(), true
}

// For is the generic form of Of.
func For[T any]() (List, bool) {
	return Of(reflect.TypeFor[T]())
}

// Validate checks that every descriptor in l belongs to owner, has a name,
// and that no name is declared twice.
func Validate(owner reflect.Type, l List) error {
	for i, d := range l {
		if d == nil {
			return errors.Wrapf(ErrForeignProperty, "%s: property %d is nil", owner, i)
		}
		if d.Name() == "" {
			return errors.Wrapf(ErrEmptyName, "%s: property %d", owner, i)
		}
		if d.Owner() != owner {
			return errors.Wrapf(ErrForeignProperty, "%s: property %q is declared on %s", owner, d.Name(), d.Owner())
		}
	}

	if dups := lo.FindDuplicates(l.Names()); len(dups) > 0 {
		return errors.Wrapf(ErrDuplicateProperty, "%s declares %q more than once", owner, dups[0])
	}

	return nil
}

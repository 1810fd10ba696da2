// Package types models the types a VHDL declaration can introduce
// (enumerations, integers, floating-point, physical quantities, arrays)
// plus the compiler-internal marker types, behind a uniform
// classification interface.
//
// All type values are immutable once constructed. The elaborator that
// builds them owns their storage; everything downstream reads them
// through the Type interface or narrows them through AnyType.
package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Type is the interface implemented by every type in the model.
type Type interface {
	// IsScalar returns true for enumeration, integer, floating-point
	// and physical types.
	IsScalar() bool
	// IsDiscrete returns true for enumeration and integer types.
	IsDiscrete() bool
	// IsNumeric returns true for integer, floating-point and physical
	// types.
	IsNumeric() bool
	// IsComposite returns true for array types.
	IsComposite() bool
	// AsAny converts the type into its AnyType dispatch view.
	AsAny() AnyType
	fmt.Stringer
}

// AnyType is a tagged view over the concrete kinds of the model. It
// never owns the type it references and is cheap to copy; its lifetime
// is that of the referenced value. Code that needs to know exactly
// which kind it is operating on narrows an AnyType; everything else
// stays on the Type interface.
type AnyType struct {
	kind Kind
	typ  Type
}

var _ Type = AnyType{}

// Kind returns the tag of the view.
func (a AnyType) Kind() Kind { return a.kind }

func (a AnyType) IsScalar() bool {
	switch a.kind {
	case KindEnum, KindInteger, KindFloating, KindPhysical, KindUniversalInteger, KindUniversalReal:
		return true
	case KindArray, KindNull:
		return false
	default:
		panic("??")
	}
}

func (a AnyType) IsDiscrete() bool {
	switch a.kind {
	case KindEnum, KindInteger, KindUniversalInteger:
		return true
	case KindFloating, KindPhysical, KindArray, KindNull, KindUniversalReal:
		return false
	default:
		panic("??")
	}
}

func (a AnyType) IsNumeric() bool {
	switch a.kind {
	case KindInteger, KindFloating, KindPhysical, KindUniversalInteger, KindUniversalReal:
		return true
	case KindEnum, KindArray, KindNull:
		return false
	default:
		panic("??")
	}
}

func (a AnyType) IsComposite() bool {
	switch a.kind {
	case KindArray:
		return true
	case KindEnum, KindInteger, KindFloating, KindPhysical, KindNull, KindUniversalInteger, KindUniversalReal:
		return false
	default:
		panic("??")
	}
}

// AsAny of a view is the view itself.
func (a AnyType) AsAny() AnyType { return a }

func (a AnyType) String() string { return a.typ.String() }

// Enum returns the enumeration type behind the view, or false if the
// view holds another kind.
func (a AnyType) Enum() (*EnumType, bool) {
	if a.kind != KindEnum {
		return nil, false
	}
	t, ok := a.typ.(*EnumType)
	return t, ok
}

// Integer returns the integer type behind the view, or false if the
// view holds another kind.
func (a AnyType) Integer() (IntegerType, bool) {
	if a.kind != KindInteger {
		return nil, false
	}
	t, ok := a.typ.(IntegerType)
	return t, ok
}

// Floating returns the floating-point type behind the view, or false if
// the view holds another kind.
func (a AnyType) Floating() (*FloatingType, bool) {
	if a.kind != KindFloating {
		return nil, false
	}
	t, ok := a.typ.(*FloatingType)
	return t, ok
}

// Physical returns the physical type behind the view, or false if the
// view holds another kind.
func (a AnyType) Physical() (*PhysicalType, bool) {
	if a.kind != KindPhysical {
		return nil, false
	}
	t, ok := a.typ.(*PhysicalType)
	return t, ok
}

// Array returns the array type behind the view, or false if the view
// holds another kind.
func (a AnyType) Array() (*ArrayType, bool) {
	if a.kind != KindArray {
		return nil, false
	}
	t, ok := a.typ.(*ArrayType)
	return t, ok
}

// IsNull checks if the view holds the null type.
func (a AnyType) IsNull() bool { return a.kind == KindNull }

// IsUniversalInteger checks if the view holds the universal integer
// type.
func (a AnyType) IsUniversalInteger() bool { return a.kind == KindUniversalInteger }

// IsUniversalReal checks if the view holds the universal real type.
func (a AnyType) IsUniversalReal() bool { return a.kind == KindUniversalReal }

// MustEnum returns the enumeration type behind the view. Calling it on
// a view of any other kind is a programmer error and panics.
func (a AnyType) MustEnum() *EnumType {
	t, ok := a.Enum()
	if !ok {
		panic(errors.Errorf("type %s is not an enum", a.kind))
	}
	return t
}

// MustInteger returns the integer type behind the view. Calling it on a
// view of any other kind is a programmer error and panics.
func (a AnyType) MustInteger() IntegerType {
	t, ok := a.Integer()
	if !ok {
		panic(errors.Errorf("type %s is not an integer", a.kind))
	}
	return t
}

// MustFloating returns the floating-point type behind the view. Calling
// it on a view of any other kind is a programmer error and panics.
func (a AnyType) MustFloating() *FloatingType {
	t, ok := a.Floating()
	if !ok {
		panic(errors.Errorf("type %s is not a floating", a.kind))
	}
	return t
}

// MustPhysical returns the physical type behind the view. Calling it on
// a view of any other kind is a programmer error and panics.
func (a AnyType) MustPhysical() *PhysicalType {
	t, ok := a.Physical()
	if !ok {
		panic(errors.Errorf("type %s is not a physical", a.kind))
	}
	return t
}

// MustArray returns the array type behind the view. Calling it on a
// view of any other kind is a programmer error and panics.
func (a AnyType) MustArray() *ArrayType {
	t, ok := a.Array()
	if !ok {
		panic(errors.Errorf("type %s is not an array", a.kind))
	}
	return t
}

package types

import "github.com/pkg/errors"

// A ResolutionFuncRef identifies a resolution function declared
// elsewhere. The type model carries it opaquely; interpreting it is the
// signal-resolution logic's concern.
type ResolutionFuncRef uint32

// An IntegerType is an integer base type or subtype.
type IntegerType interface {
	Type
	// Range of values the integer can assume.
	Range() IntRange
	// BaseType returns the ultimate base type of the integer. Base
	// types return themselves.
	BaseType() IntegerType
	// ResolutionFunc returns the resolution function associated with
	// the type, if any.
	ResolutionFunc() (ResolutionFuncRef, bool)
}

// integerClass supplies the classification shared by every integer
// kind: integers are scalar, discrete and numeric, never composite.
type integerClass struct{}

func (integerClass) IsScalar() bool    { return true }
func (integerClass) IsDiscrete() bool  { return true }
func (integerClass) IsNumeric() bool   { return true }
func (integerClass) IsComposite() bool { return false }

// An IntegerBasetype is an integer base type, carrying the range its
// declaration specified.
type IntegerBasetype struct {
	integerClass
	rng IntRange
}

var _ IntegerType = &IntegerBasetype{}

// NewIntegerBasetype creates an integer base type over the given range.
func NewIntegerBasetype(rng IntRange) *IntegerBasetype {
	return &IntegerBasetype{rng: rng}
}

func (t *IntegerBasetype) Range() IntRange       { return t.rng }
func (t *IntegerBasetype) BaseType() IntegerType { return t }

func (t *IntegerBasetype) ResolutionFunc() (ResolutionFuncRef, bool) { return 0, false }

func (t *IntegerBasetype) AsAny() AnyType { return AnyType{kind: KindInteger, typ: t} }
func (t *IntegerBasetype) String() string { return t.rng.String() }

// An IntegerSubtype constrains an integer type to a subrange,
// optionally attaching a resolution function.
type IntegerSubtype struct {
	integerClass
	base   IntegerType
	rng    IntRange
	resFn  ResolutionFuncRef
	hasRes bool
}

var _ IntegerType = &IntegerSubtype{}

// NewIntegerSubtype creates a subtype of base constrained to rng. The
// constraint must lie within the base type's range unless it is a null
// range.
func NewIntegerSubtype(base IntegerType, rng IntRange) (*IntegerSubtype, error) {
	if !rng.IsNull() && !base.Range().HasSubrange(rng) {
		return nil, errors.Errorf("subtype range %s exceeds base range %s", rng, base.Range())
	}
	return &IntegerSubtype{base: base, rng: rng}, nil
}

// NewResolvedIntegerSubtype creates a subtype like NewIntegerSubtype
// does and attaches a resolution function to it.
func NewResolvedIntegerSubtype(base IntegerType, rng IntRange, resFn ResolutionFuncRef) (*IntegerSubtype, error) {
	t, err := NewIntegerSubtype(base, rng)
	if err != nil {
		return nil, err
	}
	t.resFn = resFn
	t.hasRes = true
	return t, nil
}

func (t *IntegerSubtype) Range() IntRange { return t.rng }

// BaseType collapses the subtype chain down to the base type.
func (t *IntegerSubtype) BaseType() IntegerType { return t.base.BaseType() }

func (t *IntegerSubtype) ResolutionFunc() (ResolutionFuncRef, bool) { return t.resFn, t.hasRes }

func (t *IntegerSubtype) AsAny() AnyType { return AnyType{kind: KindInteger, typ: t} }
func (t *IntegerSubtype) String() string { return t.rng.String() }

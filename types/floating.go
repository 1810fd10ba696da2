package types

// A FloatingType is a floating-point type defined by a range of real
// values.
type FloatingType struct {
	rng RealRange
}

var _ Type = &FloatingType{}

// NewFloating creates a floating-point type over the given range.
func NewFloating(rng RealRange) *FloatingType {
	return &FloatingType{rng: rng}
}

// Range returns the range of values.
func (t *FloatingType) Range() RealRange { return t.rng }

func (t *FloatingType) IsScalar() bool    { return true }
func (t *FloatingType) IsDiscrete() bool  { return false }
func (t *FloatingType) IsNumeric() bool   { return true }
func (t *FloatingType) IsComposite() bool { return false }
func (t *FloatingType) AsAny() AnyType    { return AnyType{kind: KindFloating, typ: t} }
func (t *FloatingType) String() string    { return t.rng.String() }

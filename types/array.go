package types

// An ArrayType is an array over one or more index subtypes. Index and
// element references are not owned by the array; they live as long as
// the elaboration that created them.
type ArrayType struct {
	indices []Type
	element Type
}

var _ Type = &ArrayType{}

// NewArray creates an array type from its index subtypes and element
// subtype. Whether the indices are actually discrete is checked during
// elaboration, not here.
func NewArray(indices []Type, element Type) *ArrayType {
	return &ArrayType{indices: indices, element: element}
}

// Indices returns the index subtypes. The caller must not modify the
// slice.
func (t *ArrayType) Indices() []Type { return t.indices }

// Element returns the element subtype.
func (t *ArrayType) Element() Type { return t.element }

func (t *ArrayType) IsScalar() bool    { return false }
func (t *ArrayType) IsDiscrete() bool  { return false }
func (t *ArrayType) IsNumeric() bool   { return false }
func (t *ArrayType) IsComposite() bool { return true }
func (t *ArrayType) AsAny() AnyType    { return AnyType{kind: KindArray, typ: t} }
func (t *ArrayType) String() string    { return "array" }

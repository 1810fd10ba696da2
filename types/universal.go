package types

// Singletons for the marker types. They give degenerate and
// compiler-synthesized situations a representable type, so the rest of
// the compiler never needs an optional type slot.
var (
	// Null is the type of degenerate constructs, such as arrays whose
	// bounds collapse into a null range.
	Null Type = NullType{}
	// UniversalInteger types integer literals before their context
	// fixes a concrete integer type.
	UniversalInteger Type = UniversalIntegerType{}
	// UniversalReal types real literals before their context fixes a
	// concrete floating-point type.
	UniversalReal Type = UniversalRealType{}
)

// NullType is the type of degenerate constructs. It is not part of the
// language's own type system; arrays with a null index range degenerate
// into it, and it changes how types match.
type NullType struct{}

var _ Type = NullType{}

func (NullType) IsScalar() bool    { return false }
func (NullType) IsDiscrete() bool  { return false }
func (NullType) IsNumeric() bool   { return false }
func (NullType) IsComposite() bool { return false }
func (NullType) AsAny() AnyType    { return AnyType{kind: KindNull, typ: NullType{}} }
func (NullType) String() string    { return "null" }

// UniversalIntegerType stands in for the integer type with the largest
// range. Integer literals keep arbitrary-precision values, so no actual
// largest type is needed; this marker types them until context decides.
type UniversalIntegerType struct{}

var _ Type = UniversalIntegerType{}

func (UniversalIntegerType) IsScalar() bool    { return true }
func (UniversalIntegerType) IsDiscrete() bool  { return true }
func (UniversalIntegerType) IsNumeric() bool   { return true }
func (UniversalIntegerType) IsComposite() bool { return false }
func (UniversalIntegerType) AsAny() AnyType {
	return AnyType{kind: KindUniversalInteger, typ: UniversalIntegerType{}}
}
func (UniversalIntegerType) String() string { return "{universal integer}" }

// UniversalRealType stands in for the floating-point type with the
// largest range, typing real literals until context decides.
type UniversalRealType struct{}

var _ Type = UniversalRealType{}

func (UniversalRealType) IsScalar() bool    { return true }
func (UniversalRealType) IsDiscrete() bool  { return false }
func (UniversalRealType) IsNumeric() bool   { return true }
func (UniversalRealType) IsComposite() bool { return false }
func (UniversalRealType) AsAny() AnyType {
	return AnyType{kind: KindUniversalReal, typ: UniversalRealType{}}
}
func (UniversalRealType) String() string { return "{universal real}" }

package types

// Kind discriminates the concrete kinds of the type model.
type Kind int

const (
	KindEnum Kind = iota
	KindInteger
	KindFloating
	KindPhysical
	KindArray
	KindNull
	KindUniversalInteger
	KindUniversalReal
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindInteger:
		return "integer"
	case KindFloating:
		return "floating"
	case KindPhysical:
		return "physical"
	case KindArray:
		return "array"
	case KindNull:
		return "null"
	case KindUniversalInteger:
		return "universal integer"
	case KindUniversalReal:
		return "universal real"
	default:
		panic("??")
	}
}

package types

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/hdl-tools/vhdlsem/names"
)

// An EnumLiteral is a single literal of an enumeration type: an
// identifier such as `high`, or a character such as '0'.
type EnumLiteral interface {
	fmt.Stringer
	enumLiteral()
}

// IdentLiteral is an identifier enumeration literal.
type IdentLiteral struct {
	Name names.Name
}

// Ident creates an identifier literal, interning its name.
func Ident(name string) IdentLiteral {
	return IdentLiteral{Name: names.New(name)}
}

func (IdentLiteral) enumLiteral() {}

func (l IdentLiteral) String() string { return l.Name.String() }

// CharLiteral is a character enumeration literal.
type CharLiteral rune

// Char creates a character literal.
func Char(c rune) CharLiteral { return CharLiteral(c) }

func (CharLiteral) enumLiteral() {}

func (l CharLiteral) String() string { return fmt.Sprintf("'%c'", rune(l)) }

// An EnumType is an enumeration type. The order of its literals is
// significant: it defines their ordinal values.
type EnumType struct {
	lits []EnumLiteral
}

var _ Type = &EnumType{}

// NewEnum creates an enumeration type from its literals.
func NewEnum(lits ...EnumLiteral) *EnumType {
	return &EnumType{lits: lits}
}

// Len returns the number of literals.
func (t *EnumType) Len() int { return len(t.lits) }

// Literal returns the literal at the given position. Enumerations are
// built once from a fixed declaration, so an out-of-bounds position is
// a programmer error and panics.
func (t *EnumType) Literal(pos int) EnumLiteral {
	if pos < 0 || pos >= len(t.lits) {
		panic(errors.Errorf("literal position %d out of bounds in enum of %d literals", pos, len(t.lits)))
	}
	return t.lits[pos]
}

// Literals returns the literals. The caller must not modify the slice.
func (t *EnumType) Literals() []EnumLiteral { return t.lits }

func (t *EnumType) IsScalar() bool    { return true }
func (t *EnumType) IsDiscrete() bool  { return true }
func (t *EnumType) IsNumeric() bool   { return false }
func (t *EnumType) IsComposite() bool { return false }
func (t *EnumType) AsAny() AnyType    { return AnyType{kind: KindEnum, typ: t} }

func (t *EnumType) String() string {
	lits := make([]string, len(t.lits))
	for i, lit := range t.lits {
		lits[i] = lit.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(lits, ", "))
}

package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/hdl-tools/vhdlsem/names"
)

// A UnitScale relates a secondary unit to another unit of the same
// physical type.
type UnitScale struct {
	// Scale is the multiple of the referenced unit.
	Scale *big.Int
	// Unit is the position of the referenced unit in the type's unit
	// table.
	Unit int
}

// A PhysicalUnit is a measurement unit of a physical type.
type PhysicalUnit struct {
	// Name of the unit.
	Name names.Name
	// Abs is the scale of the unit with respect to the type's primary
	// unit.
	Abs *big.Int
	// Rel relates the unit to another unit of the type. The primary
	// unit has no relative scale.
	Rel *UnitScale
}

// PrimaryUnit creates a primary unit. The scale is copied.
func PrimaryUnit(name names.Name, abs *big.Int) PhysicalUnit {
	return PhysicalUnit{Name: name, Abs: new(big.Int).Set(abs)}
}

// PrimaryUnitOf creates a primary unit from an int64 scale.
func PrimaryUnitOf(name string, abs int64) PhysicalUnit {
	return PhysicalUnit{Name: names.New(name), Abs: big.NewInt(abs)}
}

// SecondaryUnit creates a secondary unit defined as rel times the unit
// at position relTo, carrying abs as its direct scale against the
// primary unit. The scales are copied.
func SecondaryUnit(name names.Name, abs, rel *big.Int, relTo int) PhysicalUnit {
	return PhysicalUnit{
		Name: name,
		Abs:  new(big.Int).Set(abs),
		Rel:  &UnitScale{Scale: new(big.Int).Set(rel), Unit: relTo},
	}
}

// SecondaryUnitOf creates a secondary unit from int64 scales.
func SecondaryUnitOf(name string, abs, rel int64, relTo int) PhysicalUnit {
	return PhysicalUnit{
		Name: names.New(name),
		Abs:  big.NewInt(abs),
		Rel:  &UnitScale{Scale: big.NewInt(rel), Unit: relTo},
	}
}

// A PhysicalType is a numeric type whose values are integer multiples
// of a measurement unit. It has exactly one primary unit; secondary
// units are defined as multiples of other units of the type.
type PhysicalType struct {
	rng     IntRange
	units   []PhysicalUnit
	primary int
}

var _ Type = &PhysicalType{}

// CheckUnits verifies the unit table of a physical type: the primary
// position must be in bounds, the primary unit must have scale one and
// no relative link, and every secondary unit must link to another unit
// of the table.
func CheckUnits(units []PhysicalUnit, primary int) error {
	if primary < 0 || primary >= len(units) {
		return errors.Errorf("primary unit position %d out of bounds in table of %d units", primary, len(units))
	}
	p := units[primary]
	if p.Rel != nil {
		return errors.Errorf("primary unit %s has a relative scale", p.Name)
	}
	if p.Abs.Cmp(bigOne) != 0 {
		return errors.Errorf("primary unit %s has scale %s, want 1", p.Name, p.Abs)
	}
	for i, u := range units {
		if i == primary {
			continue
		}
		if u.Rel == nil {
			return errors.Errorf("secondary unit %s has no relative scale", u.Name)
		}
		if u.Rel.Unit < 0 || u.Rel.Unit >= len(units) || u.Rel.Unit == i {
			return errors.Errorf("unit %s links to position %d, want another unit of the table", u.Name, u.Rel.Unit)
		}
	}
	return nil
}

// NewPhysical creates a physical type from its range of primary-unit
// multiples, its unit table and the position of the primary unit. The
// unit table must satisfy CheckUnits; passing one that does not is a
// programmer error and panics.
func NewPhysical(rng IntRange, units []PhysicalUnit, primary int) *PhysicalType {
	if err := CheckUnits(units, primary); err != nil {
		panic(err)
	}
	return &PhysicalType{rng: rng, units: units, primary: primary}
}

// Range returns the range of integer multiples of the primary unit.
func (t *PhysicalType) Range() IntRange { return t.rng }

// Units returns the unit table. The caller must not modify the slice.
func (t *PhysicalType) Units() []PhysicalUnit { return t.units }

// PrimaryIndex returns the position of the primary unit.
func (t *PhysicalType) PrimaryIndex() int { return t.primary }

func (t *PhysicalType) IsScalar() bool    { return true }
func (t *PhysicalType) IsDiscrete() bool  { return false }
func (t *PhysicalType) IsNumeric() bool   { return true }
func (t *PhysicalType) IsComposite() bool { return false }
func (t *PhysicalType) AsAny() AnyType    { return AnyType{kind: KindPhysical, typ: t} }

func (t *PhysicalType) String() string {
	unitNames := make([]string, len(t.units))
	for i, u := range t.units {
		unitNames[i] = u.Name.String()
	}
	return fmt.Sprintf("%s units (%s)", t.rng, strings.Join(unitNames, ", "))
}

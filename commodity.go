package commodity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// divisionScale is the number of fractional digits carried when dividing
// decimals. Rate conversions must preserve at least 27 significant
// fractional digits, so divisions round at 28.
const divisionScale = 28

// Commodity represents an amount of a commodity: an exact decimal value
// tagged with the [TypeID] of the unit it is denominated in.
// Its zero value corresponds to "0" with the empty type id.
// Commodity is a plain value with no hidden state and is safe for
// concurrent use by multiple goroutines.
type Commodity struct {
	value  decimal.Decimal // the amount
	typeID TypeID          // the unit the amount is denominated in
}

// New returns a commodity with the given value and type id.
func New(value decimal.Decimal, id TypeID) Commodity {
	return Commodity{value: value, typeID: id}
}

// NewFromType returns a commodity with the given value, denominated in
// the given type. Only the type's id is retained.
// See also constructor [New].
func NewFromType(value decimal.Decimal, t Type) Commodity {
	return New(value, t.ID)
}

// Zero returns a commodity with a value of 0 and the given type id.
func Zero(id TypeID) Commodity {
	return New(decimal.Decimal{}, id)
}

// Parse converts a string of the form "<decimal> <id>", such as "1.234 USD",
// to a commodity. The input must contain exactly two whitespace-separated
// tokens; any other shape returns an [InvalidCommodityStringError].
func Parse(s string) (Commodity, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 2 {
		return Commodity{}, &InvalidCommodityStringError{Input: s}
	}
	value, err := decimal.NewFromString(tokens[0])
	if err != nil {
		return Commodity{}, &InvalidCommodityStringError{Input: s}
	}
	id, err := ParseTypeID(tokens[1])
	if err != nil {
		return Commodity{}, err
	}
	return New(value, id), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding commodities.
func MustParse(s string) Commodity {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return c
}

// Value returns the decimal value of the commodity.
func (c Commodity) Value() decimal.Decimal {
	return c.value
}

// TypeID returns the id of the commodity's type.
func (c Commodity) TypeID() TypeID {
	return c.typeID
}

// Sign returns:
//
//	-1 if c < 0
//	 0 if c = 0
//	+1 if c > 0
func (c Commodity) Sign() int {
	return c.value.Sign()
}

// IsZero returns:
//
//	true  if c = 0
//	false otherwise
func (c Commodity) IsZero() bool {
	return c.value.IsZero()
}

// IsNeg returns:
//
//	true  if c < 0
//	false otherwise
func (c Commodity) IsNeg() bool {
	return c.value.IsNegative()
}

// IsPos returns:
//
//	true  if c > 0
//	false otherwise
func (c Commodity) IsPos() bool {
	return c.value.IsPositive()
}

// SameType reports whether both commodities are denominated in the same
// type, and are therefore compatible for arithmetic and comparison.
func (c Commodity) SameType(other Commodity) bool {
	return c.typeID == other.typeID
}

// checkCompatible returns an IncompatibleTypesError carrying both operands
// when the commodities are denominated in different types.
func (c Commodity) checkCompatible(other Commodity, reason string) error {
	if !c.SameType(other) {
		return &IncompatibleTypesError{This: c, Other: other, Reason: reason}
	}
	return nil
}

// Add returns the sum c + other.
//
// Add returns an [IncompatibleTypesError] if the commodities are
// denominated in different types.
func (c Commodity) Add(other Commodity) (Commodity, error) {
	if err := c.checkCompatible(other, "cannot add commodities with different types"); err != nil {
		return Commodity{}, err
	}
	return New(c.value.Add(other.value), c.typeID), nil
}

// Sub returns the difference c - other.
//
// Sub returns an [IncompatibleTypesError] if the commodities are
// denominated in different types.
func (c Commodity) Sub(other Commodity) (Commodity, error) {
	if err := c.checkCompatible(other, "cannot subtract commodities with different types"); err != nil {
		return Commodity{}, err
	}
	return New(c.value.Sub(other.value), c.typeID), nil
}

// Neg returns the commodity with the opposite sign.
func (c Commodity) Neg() Commodity {
	return New(c.value.Neg(), c.typeID)
}

// Abs returns the absolute value of the commodity.
func (c Commodity) Abs() Commodity {
	return New(c.value.Abs(), c.typeID)
}

// DivInt64 returns the commodity divided by the integer i, carrying the
// quotient to [divisionScale] fractional digits. The value is not rescaled
// before dividing.
//
// DivInt64 returns a [DivideOverflowError] if i is 0.
func (c Commodity) DivInt64(i int64) (Commodity, error) {
	if i == 0 {
		return Commodity{}, &DivideOverflowError{Numerator: c.value, Denominator: decimal.Decimal{}}
	}
	return New(c.value.DivRound(decimal.NewFromInt(i), divisionScale), c.typeID), nil
}

// DivideShare divides the commodity into |n| shares that sum to the
// original value at dp fractional digits: every share holds the quotient
// truncated at dp digits, and the remainder is distributed one
// least-significant unit at a time to the leading shares. The sign of the
// distributed units is the product of the signs of the remainder and of n,
// so negative values and negative share counts are both supported.
//
// Value below the dp-th fractional digit is dropped.
//
// DivideShare returns an error if n is 0.
func (c Commodity) DivideShare(n int64, dp int32) ([]Commodity, error) {
	shares, err := c.divideShare(n, dp)
	if err != nil {
		return nil, fmt.Errorf("dividing %v into %v shares: %w", c, n, err)
	}
	return shares, nil
}

func (c Commodity) divideShare(n int64, dp int32) ([]Commodity, error) {
	if n == 0 {
		return nil, fmt.Errorf("number of shares must be non-zero")
	}

	// Quotient truncated toward zero, remainder with the sign of the value.
	quo, rem := c.value.QuoRem(decimal.NewFromInt(n), 0)

	// Residue as a signed count of units at the dp-th fractional digit.
	unit := decimal.New(1, -dp)
	units := rem.DivRound(unit, divisionScale).IntPart()

	adjusted := quo.Add(unit.Mul(decimal.NewFromInt(signum(units) * signum(n))))

	unitsAbs := abs64(units)
	count := abs64(n)
	shares := make([]Commodity, 0, count)
	for i := int64(1); i <= count; i++ {
		value := quo
		if i <= unitsAbs {
			value = adjusted
		}
		shares = append(shares, New(value, c.typeID))
	}
	return shares, nil
}

func signum(i int64) int64 {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}

// Convert returns the commodity converted to the given type id using the
// conversion rate, such that result = c * rate.
// See also method [ExchangeRate.Convert].
func (c Commodity) Convert(id TypeID, rate decimal.Decimal) Commodity {
	return New(c.value.Mul(rate), id)
}

// Less reports whether c has a value less than other.
//
// Less returns an [IncompatibleTypesError] if the commodities are
// denominated in different types.
func (c Commodity) Less(other Commodity) (bool, error) {
	if err := c.checkCompatible(other, "cannot compare commodities with different types"); err != nil {
		return false, err
	}
	return c.value.LessThan(other.value), nil
}

// Greater reports whether c has a value greater than other.
//
// Greater returns an [IncompatibleTypesError] if the commodities are
// denominated in different types.
func (c Commodity) Greater(other Commodity) (bool, error) {
	if err := c.checkCompatible(other, "cannot compare commodities with different types"); err != nil {
		return false, err
	}
	return c.value.GreaterThan(other.value), nil
}

// Cmp compares commodities and returns:
//
//	-1 if c < other
//	 0 if c = other
//	+1 if c > other
//
// Cmp returns an [IncompatibleTypesError] if the commodities are
// denominated in different types.
func (c Commodity) Cmp(other Commodity) (int, error) {
	if err := c.checkCompatible(other, "cannot compare commodities with different types"); err != nil {
		return 0, err
	}
	return c.value.Cmp(other.value), nil
}

// Equal reports whether both commodities have the same type id and equal
// values. Unlike [Commodity.Cmp], Equal is total: commodities of different
// types are simply not equal.
func (c Commodity) Equal(other Commodity) bool {
	return c.typeID == other.typeID && c.value.Equal(other.value)
}

// DefaultEpsilon returns the default tolerance for approximate comparisons
// between commodities, 1e-6.
// See also method [Commodity.EqualApprox].
func DefaultEpsilon() decimal.Decimal {
	return decimal.New(1, -6)
}

// EqualApprox reports whether both commodities have the same type id and
// values within epsilon of each other. For commodities of different types
// it is always false, regardless of the values.
func (c Commodity) EqualApprox(other Commodity, epsilon decimal.Decimal) bool {
	if c.typeID != other.typeID {
		return false
	}
	return c.value.Sub(other.value).Abs().LessThanOrEqual(epsilon)
}

// String implements the [fmt.Stringer] interface and returns the commodity
// in the form "<decimal> <id>", such as "1.234 USD".
// See also constructor [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Commodity) String() string {
	return c.value.String() + " " + c.typeID.String()
}

// commodityJSON is the serialized form of a Commodity.
type commodityJSON struct {
	Value  decimal.Decimal `json:"value"`
	TypeID TypeID          `json:"type_id"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// A commodity marshals as an object with the decimal value rendered as a
// string, for example {"value":"1.234","type_id":"USD"}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Commodity) MarshalJSON() ([]byte, error) {
	return json.Marshal(commodityJSON{Value: c.value, TypeID: c.typeID})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The value field may be given either as a JSON string or as a JSON number.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Commodity) UnmarshalJSON(data []byte) error {
	var aux commodityJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Commodity{}, err)
	}
	*c = New(aux.Value, aux.TypeID)
	return nil
}

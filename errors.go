package commodity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// IDTooLongError is returned when parsing a type id longer than [MaxTypeIDLen].
type IDTooLongError struct {
	ID string
}

func (e *IDTooLongError) Error() string {
	return fmt.Sprintf("commodity type id %q is too long: a maximum of %d characters is allowed", e.ID, MaxTypeIDLen)
}

// InvalidAlpha3Error is returned by [TypeFromAlpha3] when the given code does
// not match any currency in the ISO 4217 table.
type InvalidAlpha3Error struct {
	Alpha3 string
}

func (e *InvalidAlpha3Error) Error() string {
	return fmt.Sprintf("the alpha3 code %q does not match any currency in the ISO 4217 table", e.Alpha3)
}

// InvalidCommodityStringError is returned by [Parse] when the input is not a
// decimal followed by a type id.
type InvalidCommodityStringError struct {
	Input string
}

func (e *InvalidCommodityStringError) Error() string {
	return fmt.Sprintf("the string %q is invalid: expected a decimal followed by a type id, e.g. \"1.234 USD\"", e.Input)
}

// IncompatibleTypesError is returned by arithmetic and comparison operations
// when the operands are denominated in different commodity types.
// Both operands are preserved so callers can show what was attempted.
type IncompatibleTypesError struct {
	This   Commodity
	Other  Commodity
	Reason string
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("commodity %v is incompatible with %v: %s", e.This, e.Other, e.Reason)
}

// TypeNotPresentError is returned by [ExchangeRate.Convert] when a required
// commodity type has no entry in the rate table.
type TypeNotPresentError struct {
	ID TypeID
}

func (e *TypeNotPresentError) Error() string {
	return fmt.Sprintf("the commodity type %v is not present in the exchange rate", e.ID)
}

// DivideOverflowError is returned when the decimal layer rejects a division,
// which for this package's decimal layer means a zero divisor.
type DivideOverflowError struct {
	Numerator   decimal.Decimal
	Denominator decimal.Decimal
}

func (e *DivideOverflowError) Error() string {
	return fmt.Sprintf("divide overflow performing the division %v / %v", e.Numerator, e.Denominator)
}

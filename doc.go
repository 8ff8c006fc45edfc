/*
Package commodity implements values of commodities, such as currencies,
which are tagged with the type of the unit they are denominated in.
It leverages the [decimal] package for exact base-10 arithmetic and combines
it with a compact [TypeID] identifying the commodity type.

# Features

  - Immutable, freely copyable values, safe for concurrent use
  - Checked arithmetic and comparisons that reject operations between
    commodities of different types
  - Fair division of a commodity into integer shares that preserve the
    total value at a requested precision
  - Conversion between commodity types using an exchange rate table with
    an optional base type
  - Construction of commodity types from ISO 4217 alpha-3 currency codes

# Representation

The package consists of three main types: Commodity, Type, and TypeID.
A Commodity represents a value and consists of a decimal.Decimal and a TypeID.
A TypeID is a short fixed-capacity identifier stored inline in an array,
so commodities can be copied and compared without heap allocation.
A Type pairs a TypeID with an optional human-readable name; equality of
types considers only the id.

# Operations

Commodities of the same type can be added, subtracted, and ordered.
Operations on commodities of different types return an
[IncompatibleTypesError] carrying both operands; nothing is converted
implicitly. Conversions are explicit, either with a plain rate using
[Commodity.Convert], or through an [ExchangeRate] table which supports
direct rates against a base type as well as cross rates.

# Precision

All arithmetic is exact base-10 decimal arithmetic; there is no binary
floating point anywhere on the data path. Divisions are carried to 28
fractional digits before rounding, which preserves at least 27 significant
fractional digits through rate conversions.

# Errors

Errors are plain values returned to the caller. Each error type preserves
enough context to render a single-line diagnostic, including the operands
of a failed arithmetic operation.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package commodity

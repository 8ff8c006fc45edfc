package commodity

import "sort"

//go:generate go run scripts/iso4217/codegen.go

// TypeFromAlpha3 constructs a [Type] by looking up an alpha-3 currency code
// in the ISO 4217 table. The type's id is the alpha-3 code and its name is
// the currency name published by the standard.
//
// TypeFromAlpha3 returns an [InvalidAlpha3Error] if the code does not match
// any currency in the table.
func TypeFromAlpha3(alpha3 string) (Type, error) {
	name, ok := alpha3Lookup[alpha3]
	if !ok {
		return Type{}, &InvalidAlpha3Error{Alpha3: alpha3}
	}
	return ParseType(alpha3, name)
}

// AllCurrencies returns a [Type] for every currency in the ISO 4217 table,
// ordered by alpha-3 code.
func AllCurrencies() []Type {
	codes := make([]string, 0, len(alpha3Lookup))
	for code := range alpha3Lookup {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	types := make([]Type, 0, len(codes))
	for _, code := range codes {
		types = append(types, NewType(MustParseTypeID(code), alpha3Lookup[code]))
	}
	return types
}

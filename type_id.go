package commodity

import (
	"bytes"
	"fmt"
)

// MaxTypeIDLen is the maximum number of characters in a [TypeID].
const MaxTypeIDLen = 8

// TypeID identifies a commodity [Type], for example a currency code such
// as "USD". The characters are stored inline in a fixed-capacity array, so
// a TypeID is a plain value: it can be copied, compared with ==, and used
// as a map key without heap allocation.
//
// The zero value is the empty id. The empty id is permitted; code handling
// ids should not assume they are non-empty.
type TypeID struct {
	arr [MaxTypeIDLen]byte
	len uint8
}

// ParseTypeID converts a string to a TypeID.
// It returns an [IDTooLongError] if the string is longer than [MaxTypeIDLen].
func ParseTypeID(id string) (TypeID, error) {
	if len(id) > MaxTypeIDLen {
		return TypeID{}, &IDTooLongError{ID: id}
	}
	var t TypeID
	copy(t.arr[:], id)
	t.len = uint8(len(id))
	return t, nil
}

// MustParseTypeID is like [ParseTypeID] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding ids.
func MustParseTypeID(id string) TypeID {
	t, err := ParseTypeID(id)
	if err != nil {
		panic(fmt.Sprintf("ParseTypeID(%q) failed: %v", id, err))
	}
	return t
}

// String implements the [fmt.Stringer] interface and returns the characters
// the id was parsed from.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t TypeID) String() string {
	return string(t.arr[:t.len])
}

// Cmp compares ids byte-wise and returns:
//
//	-1 if t < other
//	 0 if t = other
//	+1 if t > other
func (t TypeID) Cmp(other TypeID) int {
	return bytes.Compare(t.arr[:t.len], other.arr[:other.len])
}

// Less reports whether t sorts before other in byte order.
// See also method [TypeID.Cmp].
func (t TypeID) Less(other TypeID) bool {
	return t.Cmp(other) < 0
}

// EqualString reports whether s also parses as a type id and matches t
// byte for byte.
func (t TypeID) EqualString(s string) bool {
	other, err := ParseTypeID(s)
	if err != nil {
		return false
	}
	return t == other
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseTypeID].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (t *TypeID) UnmarshalText(text []byte) error {
	id, err := ParseTypeID(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", TypeID{}, err)
	}
	*t = id
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (t TypeID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseTypeID].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (t *TypeID) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return t.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// A TypeID marshals as a plain string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (t TypeID) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, MaxTypeIDLen+2)
	text = append(text, '"')
	text = append(text, t.arr[:t.len]...)
	text = append(text, '"')
	return text, nil
}

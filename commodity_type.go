package commodity

// Type represents a type of commodity: the unit that a [Commodity] value
// is denominated in, such as a currency.
//
// A Type is usually referred to by its [TypeID]; the name is purely
// descriptive. Two types with the same id are considered the same type even
// when their names differ, so code keying maps by commodity type should key
// them by the ID field.
type Type struct {
	// ID is the short identifier of this type.
	ID TypeID `json:"id"`
	// Name is the human-readable name of this type.
	// An empty string means the type has no name.
	Name string `json:"name"`
}

// NewType returns a type with the given id and name.
// An empty name means the type has no name.
func NewType(id TypeID, name string) Type {
	return Type{ID: id, Name: name}
}

// ParseType converts id and name strings to a type, usually for debugging
// or unit testing purposes. An empty name string maps to the absent name.
// It returns an [IDTooLongError] if the id is longer than [MaxTypeIDLen].
func ParseType(id, name string) (Type, error) {
	typeID, err := ParseTypeID(id)
	if err != nil {
		return Type{}, err
	}
	return NewType(typeID, name), nil
}

// Equal reports whether two types have the same id. Names are not compared:
// it is assumed there are no logically different types sharing an id.
func (t Type) Equal(other Type) bool {
	return t.ID == other.ID
}

// String implements the [fmt.Stringer] interface and returns "ID (name)",
// or just "ID" when the type has no name.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Type) String() string {
	if t.Name == "" {
		return t.ID.String()
	}
	return t.ID.String() + " (" + t.Name + ")"
}

package model

// Kind discriminates the recognized domain declaration shapes.
type Kind int

const (
	// KindIota is an integer-backed type with an iota const block. All of
	// its variants are units and the encoding is the identity.
	KindIota Kind = iota

	// KindSum is a sealed interface whose variants are struct types, each
	// either a unit or carrying finite-domain fields.
	KindSum
)

// Package holds every shape selected for one generation run, in the order
// they will be emitted.
type Package struct {
	Name   string
	Shapes []*Shape
}

// Shape describes one finite-domain type.
type Shape struct {
	Name       string
	Kind       Kind
	Descriptor string // exported descriptor var name, e.g. "ColorDomain"
	Variants   []Variant
}

// Variant is one alternative of a sum shape, or one constant of an iota
// shape. Fields is empty for unit variants and always empty for KindIota.
type Variant struct {
	Name   string
	Fields []Field
}

// Field is a single field of a field-bearing variant. Multi-name field
// declarations are expanded to one Field per name, preserving order.
type Field struct {
	Name string
	Dom  FieldDomain
}

// FieldKind discriminates how a field's values are indexed.
type FieldKind int

const (
	FieldBool  FieldKind = iota // bool, cardinality 2
	FieldByte                   // uint8/byte, cardinality 256
	FieldNamed                  // named type with a domain of its own
	FieldArray                  // fixed-size array of a domain type
)

// FieldDomain describes the domain of a single field, recursively for
// array element types.
type FieldDomain struct {
	Kind     FieldKind
	Named    string       // type name when Kind is FieldNamed
	Elem     *FieldDomain // element domain when Kind is FieldArray
	ArrayLen int          // array length when Kind is FieldArray
}

package traversal

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindSlice
	KindMapValues
	KindPointer
	KindThen
	KindFiltered

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether the kind addresses a concrete container
// shape directly, without wrapping another traversal.
func (k KindEnum) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindSlice, KindMapValues, KindPointer:
		return true
	}
}

package generator

import "github.com/xll-gen/bin2c/internal/config"

// SizeType is the C type of the <name>_size constant. It is 64 bits wide on
// every common data model.
const SizeType = "unsigned long long"

// TypeInfo holds the code generation properties for a content type.
type TypeInfo struct {
	// ElementType is the C element type of the array.
	ElementType string
	// HeaderPadding is added to the raw size in the header declaration.
	HeaderPadding int
}

// typeRegistry serves as the central source of truth for type properties.
var typeRegistry = map[config.ContentType]TypeInfo{
	config.Binary: {
		ElementType:   "unsigned char",
		HeaderPadding: 0,
	},
	config.Text: {
		ElementType:   "char",
		HeaderPadding: 1,
	},
}

// LookupElementType returns the C element type for ct.
func LookupElementType(ct config.ContentType) string {
	return typeRegistry[ct].ElementType
}

// HeaderSize returns the array size declared in the header. Text reserves
// one element for the NUL terminator.
func HeaderSize(size int, ct config.ContentType) int {
	return size + typeRegistry[ct].HeaderPadding
}

// SourceSize returns the array size declared in the implementation. The
// literal always ends with an explicit \0, which is always counted, so this
// differs from HeaderSize for binary content.
func SourceSize(size int) int {
	return size + 1
}

// Package constraints provides generic type constraints shared across the module.
package constraints

// Byteseq represents a UTF-8 byte sequence, either a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}

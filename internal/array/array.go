// Package array provides the ordered, resizable numeric container used to pass
// abscissas, weights and recursion coefficients across the quadrature API.
//
// Array1D is generic over integer and floating element types. The two
// instantiations in use are Array1D[int] and Array1D[float64]; there is no
// implicit conversion between them.
package array

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrOutOfRange is returned by bounds-checked accessors.
var ErrOutOfRange = errors.New("array: index out of range")

// readChunk bounds how many elements ReadBinary buffers before the stream
// has supplied them, so a corrupt header cannot force a huge allocation.
const readChunk = 1 << 16

// ErrBadLength is returned when a binary stream declares an impossible length.
var ErrBadLength = errors.New("array: invalid length header")

// Element is the set of element types an Array1D may hold.
type Element interface {
	~int | ~float64
}

// Array1D is a one-dimensional ordered container.
type Array1D[T Element] struct {
	data []T
}

// New returns an array of n zero values.
func New[T Element](n int) *Array1D[T] {
	if n < 0 {
		n = 0
	}
	return &Array1D[T]{data: make([]T, n)}
}

// NewFilled returns an array of n copies of v.
func NewFilled[T Element](n int, v T) *Array1D[T] {
	a := New[T](n)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// From copies vals into a new array.
func From[T Element](vals []T) *Array1D[T] {
	a := New[T](len(vals))
	copy(a.data, vals)
	return a
}

func (a *Array1D[T]) Len() int { return len(a.data) }

// At returns element i.
func (a *Array1D[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, fmt.Errorf("At(%d) on length %d: %w", i, len(a.data), ErrOutOfRange)
	}
	return a.data[i], nil
}

// Set stores v at index i.
func (a *Array1D[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Set(%d) on length %d: %w", i, len(a.data), ErrOutOfRange)
	}
	a.data[i] = v
	return nil
}

// Resize changes the length to n and zeroes every element.
func (a *Array1D[T]) Resize(n int) {
	a.ResizeFill(n, 0)
}

// ResizeFill changes the length to n and sets every element to v.
func (a *Array1D[T]) ResizeFill(n int, v T) {
	if n < 0 {
		n = 0
	}
	if cap(a.data) >= n {
		a.data = a.data[:n]
	} else {
		a.data = make([]T, n)
	}
	for i := range a.data {
		a.data[i] = v
	}
}

// Clear empties the array.
func (a *Array1D[T]) Clear() { a.data = a.data[:0] }

func (a *Array1D[T]) PushBack(v T) { a.data = append(a.data, v) }

// Insert places v before index i; i == Len() appends.
func (a *Array1D[T]) Insert(i int, v T) error {
	if i < 0 || i > len(a.data) {
		return fmt.Errorf("Insert(%d) on length %d: %w", i, len(a.data), ErrOutOfRange)
	}
	var zero T
	a.data = append(a.data, zero)
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = v
	return nil
}

// Erase removes element i.
func (a *Array1D[T]) Erase(i int) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("Erase(%d) on length %d: %w", i, len(a.data), ErrOutOfRange)
	}
	a.data = append(a.data[:i], a.data[i+1:]...)
	return nil
}

// Data exposes the backing slice. Writes through it are visible to the array
// until the next Resize.
func (a *Array1D[T]) Data() []T { return a.data }

func (a *Array1D[T]) Clone() *Array1D[T] { return From(a.data) }

// DumpBinary writes an int64 length header followed by the elements, all
// little-endian. Floats are written as IEEE-754 bit patterns.
func (a *Array1D[T]) DumpBinary(w io.Writer) error {
	buf := make([]byte, 8*(len(a.data)+1))
	binary.LittleEndian.PutUint64(buf, uint64(len(a.data)))
	for i, v := range a.data {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], encode(v))
	}
	_, err := w.Write(buf)
	return err
}

// ReadBinary replaces the contents with data written by DumpBinary.
func (a *Array1D[T]) ReadBinary(r io.Reader) error {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return err
	}
	n := binary.LittleEndian.Uint64(hdr[:])
	if n > math.MaxInt32 {
		return fmt.Errorf("length %d: %w", n, ErrBadLength)
	}
	data := make([]T, 0, min(n, readChunk))
	buf := make([]byte, 8*min(n, readChunk))
	for remaining := n; remaining > 0; {
		k := min(remaining, readChunk)
		chunk := buf[:8*k]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return err
		}
		for i := uint64(0); i < k; i++ {
			data = append(data, decode[T](binary.LittleEndian.Uint64(chunk[8*i:])))
		}
		remaining -= k
	}
	a.data = data
	return nil
}

func encode[T Element](v T) uint64 {
	if isFloat[T]() {
		return math.Float64bits(float64(v))
	}
	return uint64(int64(v))
}

func decode[T Element](u uint64) T {
	if isFloat[T]() {
		return T(math.Float64frombits(u))
	}
	return T(int64(u))
}

func isFloat[T Element]() bool {
	var probe T = 1
	probe /= 2
	return probe != 0
}

// Package ftn declares the legacy Fortran routines the engine's backends
// stand in for, and the link-symbol convention used when they are called
// across a language boundary.
//
// Fortran compilers lower-case routine names and append either one or two
// trailing underscores. Which one is a build-time choice: the default is a
// single underscore, and building with -tags ftn_wdu switches to two.
// Configuration can still override it at run time via [ParseSuffix].
package ftn

import (
	"fmt"
	"sort"
	"strings"
)

// Suffix is a trailing-underscore convention.
type Suffix int

const (
	// WSU appends a single underscore: dsteqr -> dsteqr_.
	WSU Suffix = iota
	// WDU appends two underscores: dsteqr -> dsteqr__.
	WDU
)

func (s Suffix) String() string {
	if s == WDU {
		return "wdu"
	}
	return "wsu"
}

// Underscores returns the literal suffix.
func (s Suffix) Underscores() string {
	if s == WDU {
		return "__"
	}
	return "_"
}

// ParseSuffix accepts "wsu"/"wdu" or the underscores themselves. An empty
// string selects the build default.
func ParseSuffix(s string) (Suffix, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultSuffix, nil
	case "wsu", "_":
		return WSU, nil
	case "wdu", "__":
		return WDU, nil
	}
	return 0, fmt.Errorf("ftn: unknown suffix %q (want wsu or wdu)", s)
}

// Symbol returns the link name of routine under convention s.
func (s Suffix) Symbol(routine string) string {
	return strings.ToLower(routine) + s.Underscores()
}

// Routine describes one legacy routine and the Go code replacing it.
type Routine struct {
	Name      string
	Purpose   string
	Signature string
	Backend   string
}

var routines = map[string]Routine{
	"dsteqr": {
		Name:      "dsteqr",
		Purpose:   "eigenvalues and eigenvectors of a symmetric tridiagonal matrix",
		Signature: "(compz, n, d, e, z, ldz, work, info)",
		Backend:   "tridiag.LAPACK",
	},
	"dgesv": {
		Name:      "dgesv",
		Purpose:   "solve a general dense linear system",
		Signature: "(n, nrhs, a, lda, ipiv, b, ldb, info)",
		Backend:   "vandermonde.Solver",
	},
	"dgetrf": {
		Name:      "dgetrf",
		Purpose:   "LU factorization with partial pivoting",
		Signature: "(m, n, a, lda, ipiv, info)",
		Backend:   "vandermonde.Solver",
	},
	"dgetrs": {
		Name:      "dgetrs",
		Purpose:   "solve using an LU factorization from dgetrf",
		Signature: "(trans, n, nrhs, a, lda, ipiv, b, ldb, info)",
		Backend:   "vandermonde.Solver",
	},
}

// Routines returns the declaration list sorted by name.
func Routines() []Routine {
	out := make([]Routine, 0, len(routines))
	for _, r := range routines {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a routine by case-insensitive name.
func Lookup(name string) (Routine, bool) {
	r, ok := routines[strings.ToLower(name)]
	return r, ok
}

// Symbols maps every declared routine to its link name under s.
func Symbols(s Suffix) map[string]string {
	out := make(map[string]string, len(routines))
	for name := range routines {
		out[name] = s.Symbol(name)
	}
	return out
}

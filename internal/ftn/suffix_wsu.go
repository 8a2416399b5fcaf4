//go:build !ftn_wdu

package ftn

// DefaultSuffix is the convention compiled in.
const DefaultSuffix = WSU

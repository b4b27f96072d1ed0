// Package internalcheck holds static policy tests over the bridge packages.
//
// The tests load the packages with golang.org/x/tools/go/packages and walk
// their syntax trees looking for patterns that could leak key material or
// passphrases into logs and error strings. The package has no API.
package internalcheck

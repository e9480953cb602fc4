// Package moda is one of the two sibling demo modules the root endpoint
// reports. It exists so the server exercises a multi-package import graph.
package moda

const name = "module-a"

// Name returns the module's fixed name.
func Name() string {
	return name
}

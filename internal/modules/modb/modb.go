// Package modb is the second sibling demo module the root endpoint reports.
package modb

const name = "module-b"

// Name returns the module's fixed name.
func Name() string {
	return name
}

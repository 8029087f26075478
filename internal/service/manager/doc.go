// Package manager wires the gradebook domain to its persistence and drives
// the console-facing operations.
//
// The Service owns the in-memory Book and a Repository; every mutating
// operation persists the whole collection. Run* functions back the one-shot
// CLI subcommands, and RunShell provides the interactive menu loop.
package manager

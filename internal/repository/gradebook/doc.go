// Package gradebook implements persistence for the gradebook Book.
//
// The FileRepository stores and loads the whole collection as JSON on disk
// and exposes a Repository interface that the manager service depends on.
package gradebook

// Package gradebook contains core domain types for the report card business logic.
//
// It defines Record (one student's subject scores with derived average and
// letter grade) and Book (the name-keyed collection of records) with Clone
// helpers to avoid leaking internal references.
package gradebook

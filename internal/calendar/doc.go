// Package calendar computes month grids and holds the month/year selection.
//
// Layouts are pure values: ComputeLayout never touches shared state, so the
// same (year, month) always yields the same grid.
//
//	l := calendar.ComputeLayout(2024, time.January)
//	// l.Offset == 1 (Monday), day 1 at row 1, column 1
package calendar

// Package state holds the console's single mutable aggregate and the
// navigation rules for each screen.
//
// Everything here is plain data plus pure cursor arithmetic. Nothing in this
// package performs I/O or knows about the terminal; the reducer in
// internal/core is the only writer.
package state

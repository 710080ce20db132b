// Package core contains the console's event model, its side-effect contract
// and the reducer that connects them.
//
// Allowed here:
// - Action and Command definitions
// - Update and its per-screen handlers
// - pure parsing of form buffers into Command payloads
//
// Not allowed here:
// - I/O of any kind, clocks, randomness
// - rendering or key-code translation
package core

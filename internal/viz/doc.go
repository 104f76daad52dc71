// Package viz provides the terminal view of the sandbox.
//
// Bodies are drawn on a braille [Canvas] through a [Projector], which also
// maps mouse cells back to world coordinates so bodies can be dragged and
// thrown from the terminal.
//
// # Key Bindings
//
//	Mouse  - Drag and throw a body
//	Space  - Pause/Resume simulation
//	.      - Single tick while paused
//	+/-    - Grow/Shrink the selected body
//	Del    - Delete the selected body
//	A      - Spawn a body
//	?      - Show help overlay
package viz

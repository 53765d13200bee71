// Package viz is the interactive two-slit explorer, built on Bubble Tea.
//
//   - [AppState]: slider values, the current pattern and its labels
//   - [Update]: recomputes the pattern and rebuilds labels after every change
//   - [Model]: the tea.Model that routes keys to AppState
//   - [Canvas]: Braille pixel canvas used for the intensity curve
//
// # Key Bindings
//
//	Tab/J/K - Focus next/previous slider
//	H/L     - Adjust focused slider (shift for coarse steps)
//	Z/X     - Zoom the screen window in/out
//	R       - Reset all sliders
//	T       - Cycle color themes
//	?       - Show help overlay
package viz

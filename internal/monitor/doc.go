// Package monitor runs the full-screen dashboard.
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: holds the loop phase, the last known terminal size and the last
//     composed frame
//   - Update: processes ticks, snapshots, window sizes and keystrokes
//   - View: returns the last composed frame, which Bubble Tea paints in one
//     write
//
// # Message Flow
//
// One tick runs to completion before the next is scheduled:
//
//  1. tickMsg fires; the terminal size is read fresh (PhaseSizing)
//  2. below the floor, only the "too small" notice is drawn (PhaseTooSmall)
//     and the sampler is skipped
//  3. otherwise sampleCmd runs every source reader (PhaseSampling)
//  4. snapshotMsg arrives; regions are computed (PhaseLayout) and widgets
//     draw into a canvas (PhaseRendering)
//  5. the frame is stored and Bubble Tea paints it in one write once Update
//     returns; the next tick is scheduled after the interval (PhaseIdle)
//
// Key presses are handled between ticks, so 'q' or ctrl+c quit without
// waiting for the interval (PhaseTerminated).
//
// # Resources
//
// Run owns the GPIO pin bank and the terminal. The bank is opened before the
// program starts and closed on every return path.
package monitor

// Package ui contains the Bubble Tea program that hosts the editor and its
// right-click popup menu.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key and mouse messages are offered to the popup engine first. Anything
//     the engine reports as consumed stops there; everything else reaches the
//     editor (cursor movement, selection, typing, wheel scrolling).
//   - A right button transition matching the configured trigger classifies the
//     click against the frame under the pointer and opens the matching menu.
//     ctrl+o opens the same menu anchored at the cursor.
//   - finishUpdate runs after every message and asks the engine to mark its
//     draws dirty so the popup is presented on top of the next frame.
//
// State ownership:
//   - Text, frames and the yank buffer live in internal/editor.
//   - Menu tables live in a state.VarStore; the dispatcher keeps them in sync
//     with the TOML file streamed by backend.Watcher.
//   - Menu commands run through the internal/ui/command bus, which executes
//     them on the editor.
//
// Rendering:
//   - View composes frames into a cell grid, overlays the popup rows held by
//     the editor.Screen drawer and appends a status line.
package ui

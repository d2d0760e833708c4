// Package ui contains the Bubble Tea program that runs one menu session: a
// popup, a dropdown or a menu bar with its cascade of submenus.
//
// Message flow:
//   - Bubble Tea invokes Session.Update with incoming messages. Update routes
//     each tea.Msg through a typed handler registry so keys, pointer events,
//     timers and action results are each handled by a focused function.
//   - Handlers only edit the selection path (internal/ui/state.Path) and the
//     session state. They never create or destroy layers themselves.
//   - After every handler, reconcile compares the path with the live layers:
//     it opens or closes submenus, keeps the highlighted rows in sync, moves
//     layers so the current row is on screen, and redraws only damaged rows.
//     Reconciling twice without a path change is a no-op.
//
// Ownership:
//   - Layers (internal/ui/layer) own one screen surface each and know how to
//     place, draw and hit-test themselves. The session owns the stack of
//     layers and destroys it when the session ends.
//   - The screen (internal/screen) is grabbed when a session starts and
//     released exactly once during teardown.
//   - Committed items run through the internal/ui/command bus so their
//     actions execute off the Update goroutine.
//
// Pulldown and Popup wrap a session in a tea.Program for callers that just
// want the chosen item. Tests drive a Session directly through Harness.
package ui

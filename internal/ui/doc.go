// Package ui renders the navigation shell with Bubble Tea.
//
// Core abstractions:
//   - View: a screen panel or the drawer, with its own model, update, view (Elm-style)
//   - AppModel: owns navigation state and composes top bar, drawer and the active panel
//   - OverlayStack: views drawn over the body (the drawer) with a dismiss key
//   - FocusManager: rotates focus across the buttons of a panel
//   - KeybindRegistry/KeyHandler: single keys and SPC-prefixed leader sequences
package ui

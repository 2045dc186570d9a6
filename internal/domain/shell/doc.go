// Package shell implements the desktop chrome: dock, menu bar and global
// keyboard shortcuts.
//
// Each input event maps to at most one window operation. Hover and open-menu
// state is cosmetic and never touches window state.
package shell

// Package overlay implements the modal layers drawn above the windows:
// Spotlight search-and-launch and the media preview lightbox.
//
// Both are small independent state machines. Spotlight launches through a
// Launcher and never touches window state itself.
package overlay

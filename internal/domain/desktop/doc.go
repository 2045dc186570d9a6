// Package desktop implements the window manager of a desktop session.
//
// State holds the open applications, their windows and the two counters
// (z-order and spawn). Every operation is a pure transition that takes the
// current State and returns a new one, leaving its input untouched.
//
// Controller owns one State and is the only writer. It applies transitions
// under a mutex, so z-order and focus stay consistent when operations arrive
// from several goroutines, and notifies listeners in dispatch order.
//
// Window phases:
//
//	closed -> normal            open
//	normal -> minimized         minimize
//	minimized -> normal         focus / open
//	normal <-> fullscreen       toggle fullscreen
//	any -> closed               close
package desktop

// Package tcellscreen runs an input line on a tcell screen.
//
// Screen implements editor.Screen on top of tcell.Screen, so a field can be
// drawn by hosts that do not use Bubble Tea. KeyFromEvent and Input translate
// tcell events into the keys and mouse messages the field understands.
package tcellscreen

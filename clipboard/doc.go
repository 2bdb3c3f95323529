// Package clipboard holds text cut from input fields.
//
// KillRing is the single-slot store shared by every field of an
// application; System bridges to the operating system clipboard.
package clipboard

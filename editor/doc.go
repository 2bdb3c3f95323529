// Package editor provides a Bubble Tea single-line input component backed
// by the buffer package.
//
// The package is responsible for command dispatch, key and mouse handling,
// horizontal scrolling, masked and highlighted rendering, and the host
// integration hooks: history storage and browsing, the shared kill ring,
// the system clipboard, completion and change events.
//
// Rendering goes through the Screen interface. View draws onto an in-memory
// canvas styled with lipgloss; Draw paints any other Screen, such as the
// tcell adapter in the tcellscreen package.
package editor

// Package session drives one editing session: it owns the line buffer and
// the notebook, turns key events into edits, and commits expression lines on
// Enter.
//
// The front end feeds one Key at a time into State.HandleKey and renders
// State.Snapshot afterwards. Nothing here touches the terminal or the file
// system.
package session

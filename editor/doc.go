// Package editor provides the Bubble Tea front end of calcpad.
//
// The Model translates key messages into session keys, renders the document
// with a line-number gutter and cursor, and shows commit results and a status
// line below the document. All document state lives in the session.
package editor

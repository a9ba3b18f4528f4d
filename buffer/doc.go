// Package buffer implements the line-oriented document model behind calcpad.
//
// A Buffer is an ordered list of lines plus a cursor. Coordinates are 0-based
// (Row, Col) where Col counts grapheme clusters. The buffer always holds at
// least one line, and the cursor always satisfies
// 0 <= Row < LineCount() and 0 <= Col <= LineLen(Row).
package buffer

// Package lexical turns stack machine assembly source into a stream of tokens.
//
// The Scanner is single pass and pull driven: each call to Next reads just
// enough of the source to classify one token, and tracks the line and column
// of every rune it consumes so that tokens carry the position of their first
// character.
package lexical

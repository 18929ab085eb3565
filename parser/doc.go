// Package parser assembles the token stream of a stack machine program into
// line statements.
//
// Each line is built as a small state machine (empty, mnemonic seen, operand
// seen) and only turned into an ir.LineStatement at the end of the line, when
// its addressing mode is finally known. Finished lines are validated against
// the keyword table. Lexical and semantic problems are recorded on a
// report.Reporter and never stop the parse; only I/O failures are returned as
// errors.
package parser

// Package report collects positioned diagnostics without halting processing.
package report

import (
	"errors"
	"slices"

	"github.com/ezrec/vmasm/lexical"
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

// Message is a diagnostic at a source position.
type Message struct {
	Pos lexical.Position
	Err error
}

// Text returns the diagnostic text without its position.
func (msg *Message) Text() string {
	return msg.Err.Error()
}

func (msg *Message) Error() string {
	return f("%v: %v", msg.Pos.String(), msg.Err)
}

func (msg *Message) Unwrap() error {
	return msg.Err
}

// Reporter is an ordered, append only collection of messages.
type Reporter struct {
	messages []*Message
}

// Record appends a diagnostic.
func (rep *Reporter) Record(pos lexical.Position, err error) {
	rep.messages = append(rep.messages, &Message{Pos: pos, Err: err})
}

// Len returns the number of recorded messages.
func (rep *Reporter) Len() int {
	return len(rep.messages)
}

// All returns the recorded messages in recording order.
func (rep *Reporter) All() []*Message {
	return slices.Clone(rep.messages)
}

// Err joins every recorded message, or returns nil if there are none.
func (rep *Reporter) Err() error {
	errs := make([]error, len(rep.messages))
	for n, msg := range rep.messages {
		errs[n] = msg
	}
	return errors.Join(errs...)
}

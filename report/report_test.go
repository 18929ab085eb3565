package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vmasm/lexical"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
)

func TestReporter(t *testing.T) {
	assert := assert.New(t)

	rep := &Reporter{}
	assert.Equal(0, rep.Len())
	assert.NoError(rep.Err())
	assert.Empty(rep.All())

	rep.Record(lexical.Position{Line: 1, Column: 4}, errFirst)
	rep.Record(lexical.Position{Line: 3, Column: 1}, errSecond)

	all := rep.All()
	assert.Equal(2, len(all))
	assert.Equal("first", all[0].Text())
	assert.Equal("1:4: first", all[0].Error())
	assert.Equal(3, all[1].Pos.Line)
	assert.ErrorIs(all[1], errSecond)

	err := rep.Err()
	assert.ErrorIs(err, errFirst)
	assert.ErrorIs(err, errSecond)
	assert.Equal("1:4: first\n3:1: second", err.Error())

	// All returns a copy.
	all[0] = nil
	assert.NotNil(rep.All()[0])
}

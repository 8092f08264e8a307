package format

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

type boom struct{}

func (boom) String() string {
	panic("no rendering for you")
}

type labeled struct{}

func (labeled) String() string {
	return "a label"
}

func TestValue_Scalars(t *testing.T) {
	assert.Equal(t, Value(5), "5")
	assert.Equal(t, Value(1.5), "1.5")
	assert.Equal(t, Value(true), "true")
}

func TestValue_StringsAreQuoted(t *testing.T) {
	assert.Equal(t, Value("abc"), `"abc"`)
	assert.Equal(t, Value(""), `""`)
}

func TestValue_Nil(t *testing.T) {
	assert.Equal(t, Value(nil), "<nil>")
}

func TestValue_StringerAndError(t *testing.T) {
	assert.Equal(t, Value(labeled{}), "a label")
	assert.Equal(t, Value(errors.New("kaput")), "kaput")
}

func TestValue_PanickingStringerFallsBack(t *testing.T) {
	assert.Equal(t, Value(boom{}), "<unknown-type>")
}

func TestSlice_Rendering(t *testing.T) {
	assert.Equal(t, Slice([]int{1, 2, 3}), "[1, 2, 3]")
	assert.Equal(t, Slice([]string{"a", "b"}), `["a", "b"]`)
	assert.Equal(t, Slice([]int{}), "[]")
}

package phonefwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDigit(t *testing.T) {
	for ch := byte(0); ch < 255; ch++ {
		want := ch >= '0' && ch <= ';'
		assert.Equal(t, want, IsDigit(ch), "char %q", ch)
	}
}

func TestToIndexRoundTrip(t *testing.T) {
	for i := 0; i < numDigits; i++ {
		ch := FromIndex(i)
		assert.True(t, IsDigit(ch))
		assert.Equal(t, i, ToIndex(ch))
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("0123456789:;"))
	assert.True(t, IsNumber("0"))
	assert.False(t, IsNumber(""))
	assert.False(t, IsNumber("123a"))
	assert.False(t, IsNumber("12 3"))
}

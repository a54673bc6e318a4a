package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Basic(t *testing.T) {
	assert := assert.New(t)

	mode := NewMode()
	assert.Empty(mode.Get())

	err := mode.Set("output_format_not_supported")
	assert.Error(err)
	assert.Empty(mode.Get(), "a rejected mode must not stick")

	mode.Set(Text)
	assert.Equal(Text, mode.Get())
	mode.Set(JSON)
	assert.Equal(JSON, mode.Get())
	mode.Set(TSV)
	assert.Equal(TSV, mode.Get())
}

func TestMode_SupportedShouldAcceptEveryMode(t *testing.T) {
	assert := assert.New(t)

	supported := Supported()
	assert.Len(supported, 3)

	for _, name := range supported {
		mode := NewMode()
		assert.NoError(mode.Set(name))
		assert.Equal(name, mode.Get())
	}
}

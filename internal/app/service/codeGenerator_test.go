package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Length(t *testing.T) {
	assert.Equal(t, 8, NewCodeGenerator(8).Length())
	assert.Equal(t, DefaultCodeLength, NewCodeGenerator(0).Length())
	assert.Equal(t, DefaultCodeLength, NewCodeGenerator(-3).Length())
}

func TestCodeGenerator_NewCode_Charset(t *testing.T) {
	gen := NewCodeGenerator(6)

	for i := 0; i < 50; i++ {
		code, err := gen.NewCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, c := range code {
			isLowerAlnum := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
			assert.Truef(t, isLowerAlnum, "unexpected character %q in code %q", c, code)
		}
	}
}

func TestCodeGenerator_NewCode_Distinct(t *testing.T) {
	gen := NewCodeGenerator(10)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := gen.NewCode()
		require.NoError(t, err)
		assert.Falsef(t, seen[code], "code %q repeated", code)
		seen[code] = true
	}
}

package output_test

import (
	"bytes"
	"testing"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/ui/output"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorProfile(t *testing.T) {
	// NO_COLOR forces the Ascii profile.
	t.Setenv("NO_COLOR", "1")
	p := output.ColorProfile()
	assert.Equal(t, termenv.Ascii, p, "NO_COLOR should force Ascii profile")

	// Without NO_COLOR the profile is detected from the environment; we only
	// assert it is in the valid range.
	t.Setenv("NO_COLOR", "")
	p = output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, output.Plain())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Defaults to stderr; it must not panic.
	out := output.New(nil)
	assert.NotNil(t, out)
}

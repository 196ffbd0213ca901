package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pinsync/internal/ui/output"
)

func TestPaint_Ascii(t *testing.T) {
	w := output.NewWithProfile(&bytes.Buffer{}, termenv.Ascii)
	assert.Equal(t, "plain", w.Paint("plain", "#D93025"))
}

func TestPaint_TrueColor(t *testing.T) {
	w := output.NewWithProfile(&bytes.Buffer{}, termenv.TrueColor)
	got := w.Paint("red", "#D93025")
	assert.True(t, strings.Contains(got, "red"))
	assert.NotEqual(t, "red", got)
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_NilWriter(t *testing.T) {
	w := output.New(nil)
	assert.NotNil(t, w)
}

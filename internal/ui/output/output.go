// Package output creates termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for the current environment.
// NO_COLOR forces plain ASCII output.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Writer is a termenv output paired with the profile it renders with.
type Writer struct {
	*termenv.Output
	profile termenv.Profile
}

// New creates a Writer using ColorProfile.
func New(w io.Writer) *Writer {
	return NewWithProfile(w, ColorProfile())
}

// NewWithProfile creates a Writer with an explicit profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Writer {
	if w == nil {
		w = os.Stderr
	}
	return &Writer{
		Output:  termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true)),
		profile: profile,
	}
}

// Paint renders s in the given hex color. ASCII profiles get s unchanged.
func (w *Writer) Paint(s, hex string) string {
	if w.profile == termenv.Ascii {
		return s
	}
	return w.String(s).Foreground(w.Color(hex)).String()
}

package ui

import (
	"strings"
	"testing"
)

func TestPalette(t *testing.T) {
	render := map[string]func(string) string{
		"Title": Title,
		"OK":    OK,
		"Err":   Err,
		"Warn":  Warn,
		"Help":  Help,
	}

	for name, fn := range render {
		t.Run(name, func(t *testing.T) {
			if got := fn("Select a playlist"); !strings.Contains(got, "Select a playlist") {
				t.Errorf("%s dropped its text: %q", name, got)
			}
		})
	}
}

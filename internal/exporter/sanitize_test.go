package exporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"plain label", "IMAGERIE", 100, "IMAGERIE"},
		{"spaces and hyphens kept", "ACTES TECHNIQUES - DIVERS", 100, "ACTES TECHNIQUES - DIVERS"},
		{"slashes and colons replaced", "Acte/Chir:urgical", 100, "Acte_Chir_urgical"},
		{"accented letters kept", "ÉCHOGRAPHIE", 100, "ÉCHOGRAPHIE"},
		{"underscore kept", "a_b", 100, "a_b"},
		{"empty", "", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input, tt.maxLen))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("A", 250)
	assert.Len(t, SanitizeFilename(long, 100), 100)

	// Truncation counts runes, not bytes.
	accented := strings.Repeat("É", 250)
	assert.Equal(t, strings.Repeat("É", 100), SanitizeFilename(accented, 100))
}

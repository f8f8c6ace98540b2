package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		input       string
		countryCode string
		want        string
	}{
		{"+1 (617) 555-0101", "1", "16175550101"},
		{"617-555-0101", "1", "16175550101"},
		{"054-1234567", "972", "972541234567"},
		{"0044 20 7946 0000", "1", "442079460000"},
		{"16175550101", "1", "16175550101"},
		{"617 555 0101", "", "6175550101"},
		{"  +972 54 123 4567 ", "1", "972541234567"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.input, tt.countryCode))
		})
	}
}

package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid value", "Cloud Migration", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v", tt.input, err)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain address", "ana@example.com", false},
		{"subdomain", "procurement@city.gov.example", false},
		{"missing at", "ana.example.com", true},
		{"display name form", "Ana <ana@example.com>", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Email(%q) error = %v", tt.input, err)
		})
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://docs.example.com/rfp/1.pdf", false},
		{"http", "http://intranet/doc", false},
		{"relative", "/docs/1.pdf", true},
		{"ftp", "ftp://files.example.com/a", true},
		{"empty", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Link(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Link(%q) error = %v", tt.input, err)
		})
	}
}

func TestFieldValidators(t *testing.T) {
	err := criterio.ValidateStruct(
		RequiredField("title", ""),
		EmailField("email", "nope"),
		LinkField("document_link", "https://example.com/a.pdf"),
	)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "title", fieldErrs[0].Field)
	assert.Equal(t, "email", fieldErrs[1].Field)
}

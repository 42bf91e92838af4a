package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required,max=10"`
	Type  string `json:"type" validate:"omitempty,oneof=info warning"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Link  string `json:"link" validate:"omitempty,url"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Title: "hello",
		Type:  "info",
		Color: "#3b82f6",
		Link:  "https://example.com/x",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	// field is reported by its wire name
	msg, found := validationErr.Errors["title"]
	require.True(t, found, "errors: %v", validationErr.Errors)
	assert.Equal(t, "This field is required", msg)
}

func TestValidate_TagMessages(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		request sampleRequest
		field   string
		message string
	}{
		{
			name:    "oneof",
			request: sampleRequest{Title: "ok", Type: "shout"},
			field:   "type",
			message: "Must be one of: info, warning",
		},
		{
			name:    "hexcolor",
			request: sampleRequest{Title: "ok", Color: "red"},
			field:   "color",
			message: "Must be a hex color like #3b82f6",
		},
		{
			name:    "url",
			request: sampleRequest{Title: "ok", Link: "not a url"},
			field:   "link",
			message: "Must be a valid URL",
		},
		{
			name:    "max",
			request: sampleRequest{Title: "way too long for this"},
			field:   "title",
			message: "Must be at most 10",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.request)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tc.message, validationErr.Errors[tc.field])
		})
	}
}

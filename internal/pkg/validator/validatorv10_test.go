package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	EntityName         string `validate:"required"`
	SEBIRegistrationNo string `validate:"required"`
	EmailID            string `validate:"required,plausible_email"`
}

func TestV10Validator_Validate(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name   string
		in     sample
		fields []string
	}{
		{
			name: "valid",
			in:   sample{EntityName: "Acme", SEBIRegistrationNo: "INZ000", EmailID: "a@b.co"},
		},
		{
			name:   "missing fields",
			in:     sample{EmailID: "a@b.co"},
			fields: []string{"entity_name", "sebi_registration_no"},
		},
		{
			name:   "implausible email",
			in:     sample{EntityName: "Acme", SEBIRegistrationNo: "INZ000", EmailID: "not-an-email"},
			fields: []string{"email_id"},
		},
		{
			name:   "empty email reports required only",
			in:     sample{EntityName: "Acme", SEBIRegistrationNo: "INZ000"},
			fields: []string{"email_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Values(), len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verr.Values(), f)
			}
		})
	}
}

func TestV10Validator_PlausibleEmailMessage(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate(sample{EntityName: "a", SEBIRegistrationNo: "b", EmailID: "nope"})

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email_id must be a valid email address", verr["email_id"])
}

func TestIsPlausibleEmail(t *testing.T) {
	for in, want := range map[string]bool{
		"user@example.com": true,
		"a@b.c":            true,
		" x a@b.c y ":      true,
		"user@example":     false,
		"@example.com":     false,
		"user example.com": false,
		"":                 false,
	} {
		assert.Equal(t, want, IsPlausibleEmail(in), in)
	}
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.JSONEq(t, `{"a":"b"}`, V10ValidationError{"a": "b"}.Error())
}

func TestV10Validator_RequiredMessageUsesSnakeCase(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate(sample{SEBIRegistrationNo: "b", EmailID: "a@b.co"})

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "entity_name is a required field", verr["entity_name"])
}

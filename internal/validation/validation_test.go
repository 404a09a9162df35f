package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "admin@thaedal.com", wantErr: false},
		{name: "valid with plus", email: "a+b@example.org", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing domain", email: "admin@", wantErr: true},
		{name: "missing at", email: "admin.thaedal.com", wantErr: true},
		{name: "no tld", email: "admin@localhost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("admin123"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("share-market"))
	assert.NoError(t, ValidateSlug("youtube"))
	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("Share Market"))
	assert.Error(t, ValidateSlug("-leading"))
	assert.Error(t, ValidateSlug("double--hyphen"))
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor("#4CAF50"))
	assert.NoError(t, ValidateHexColor("")) // optional
	assert.Error(t, ValidateHexColor("4CAF50"))
	assert.Error(t, ValidateHexColor("#4CA"))
	assert.Error(t, ValidateHexColor("#GGGGGG"))
}

func TestValidateOneOf(t *testing.T) {
	assert.NoError(t, ValidateOneOf("status", "published", "published", "draft"))
	err := ValidateOneOf("status", "archived", "published", "draft")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status must be one of")
}

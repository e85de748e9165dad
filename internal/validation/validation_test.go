package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "Valid", email: "a@x.com", wantErr: false},
		{name: "Valid With Plus", email: "user+tag@example.co.uk", wantErr: false},
		{name: "Missing At", email: "ax.com", wantErr: true},
		{name: "Missing Domain", email: "a@", wantErr: true},
		{name: "Missing TLD", email: "a@x", wantErr: true},
		{name: "Empty", email: "", wantErr: true},
		{name: "Too Long", email: strings.Repeat("a", 250) + "@x.com", wantErr: true},
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

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada Lovelace"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 251)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 129)))
}

func TestValidatePostInput(t *testing.T) {
	assert.NoError(t, ValidatePostInput("Title", "Subtitle", "Body"))
	assert.Error(t, ValidatePostInput("", "Subtitle", "Body"))
	assert.Error(t, ValidatePostInput("Title", " ", "Body"))
	assert.Error(t, ValidatePostInput("Title", "Subtitle", ""))
	assert.Error(t, ValidatePostInput(strings.Repeat("t", 251), "Subtitle", "Body"))
}

func TestValidateCommentInput(t *testing.T) {
	assert.NoError(t, ValidateCommentInput("hello"))
	assert.Error(t, ValidateCommentInput(""))
	assert.Error(t, ValidateCommentInput("\n\t "))
	assert.Error(t, ValidateCommentInput(strings.Repeat("c", 10001)))
}

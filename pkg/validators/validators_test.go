package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "users", false},
		{"kebab", "user-management", false},
		{"digits", "oauth2-client", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"leading hyphen", "-users", true},
		{"trailing hyphen", "users-", true},
		{"double hyphen", "user--management", true},
		{"uppercase", "UserManagement", true},
		{"underscore", "user_management", true},
		{"leading digit", "2fa-service", true},
		{"path separator", "users/admin", true},
		{"non-ascii", "usuários", true},
		{"too long", strings.Repeat("a", MaxModuleNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModuleName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	assert.NoError(t, ValidateDomain("ecommerce"))
	assert.NoError(t, ValidateDomain("order fulfillment"))
	assert.Error(t, ValidateDomain(""))
	assert.Error(t, ValidateDomain("  "))
	assert.Error(t, ValidateDomain("bad\ndomain"))
}

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion("0.1.0"))
	assert.NoError(t, ValidateVersion("v1.2.3"))
	assert.NoError(t, ValidateVersion("1.0.0-rc.1"))
	assert.Error(t, ValidateVersion(""))
	assert.Error(t, ValidateVersion("1.0"))
	assert.Error(t, ValidateVersion("latest"))
}

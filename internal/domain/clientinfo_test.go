package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nangenlabs/NGL-SiteService/pkg/ptr"
)

func TestClientInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		info    ClientInfo
		wantErr string
	}{
		{
			name: "valid minimal",
			info: ClientInfo{Name: "Jane Doe", Email: "jane@example.com"},
		},
		{
			name: "valid full",
			info: ClientInfo{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Phone:   ptr.Ptr("+1 555 0100"),
				Company: ptr.Ptr("Acme"),
				Message: ptr.Ptr("Looking forward to it"),
			},
		},
		{
			name:    "missing name",
			info:    ClientInfo{Email: "jane@example.com"},
			wantErr: "name is required",
		},
		{
			name:    "blank name",
			info:    ClientInfo{Name: "   ", Email: "jane@example.com"},
			wantErr: "name is required",
		},
		{
			name:    "missing email",
			info:    ClientInfo{Name: "Jane"},
			wantErr: "email is required",
		},
		{
			name:    "email without domain",
			info:    ClientInfo{Name: "Jane", Email: "jane@"},
			wantErr: "invalid email",
		},
		{
			name:    "email with spaces",
			info:    ClientInfo{Name: "Jane", Email: "jane doe@example.com"},
			wantErr: "invalid email",
		},
		{
			name:    "email without tld",
			info:    ClientInfo{Name: "Jane", Email: "jane@example"},
			wantErr: "invalid email",
		},
		{
			name:    "phone too long",
			info:    ClientInfo{Name: "Jane", Email: "jane@example.com", Phone: ptr.Ptr(strings.Repeat("1", MaxPhoneLength+1))},
			wantErr: "phone",
		},
		{
			name:    "company too long",
			info:    ClientInfo{Name: "Jane", Email: "jane@example.com", Company: ptr.Ptr(strings.Repeat("a", MaxCompanyLength+1))},
			wantErr: "company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClientInfo_Normalize(t *testing.T) {
	info := ClientInfo{
		Name:    "  Jane Doe  ",
		Email:   " Jane@Example.COM ",
		Phone:   ptr.Ptr("  "),
		Company: ptr.Ptr(" Acme "),
	}

	info.Normalize()

	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Nil(t, info.Phone, "blank optional fields collapse to nil")
	assert.Equal(t, "Acme", *info.Company)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("  jane@example.com  "))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail(""))
}

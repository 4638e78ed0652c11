package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

func TestSignInForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		form   auth.SignInForm
		fields []string
	}{
		{
			name: "valid",
			form: auth.SignInForm{Email: "a@b.co", Password: "x"},
		},
		{
			name:   "empty form",
			form:   auth.SignInForm{},
			fields: []string{"email", "password"},
		},
		{
			name:   "malformed email",
			form:   auth.SignInForm{Email: "not-an-email", Password: "x"},
			fields: []string{"email"},
		},
		{
			name:   "email without tld",
			form:   auth.SignInForm{Email: "user@host", Password: "x"},
			fields: []string{"email"},
		},
		{
			name:   "tld too long",
			form:   auth.SignInForm{Email: "user@host.example", Password: "x"},
			fields: []string{"email"},
		},
		{
			name: "dotted and dashed parts accepted",
			form: auth.SignInForm{Email: "first.last@mail-host.co.uk", Password: "x"},
		},
		{
			name: "surrounding whitespace trimmed",
			form: auth.SignInForm{Email: "  a@b.co  ", Password: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if len(tt.fields) == 0 {
				assert.True(t, errs.Valid(), "expected no errors, got %v", errs)
				return
			}
			assert.Len(t, errs, len(tt.fields))
			for _, field := range tt.fields {
				assert.True(t, errs.Has(field), "expected error on %q", field)
			}
		})
	}
}

func TestSignUpForm_Validate(t *testing.T) {
	valid := auth.SignUpForm{
		Name:        "Sam",
		Email:       "sam@example.co",
		Password:    "secret1",
		Role:        "user",
		AcceptTerms: true,
	}

	t.Run("valid", func(t *testing.T) {
		form := valid
		assert.True(t, form.Validate().Valid())
		assert.Equal(t, marketplace.RoleUser, form.ParsedRole())
	})

	t.Run("short password blocks submission", func(t *testing.T) {
		form := valid
		form.Password = "abc12"
		errs := form.Validate()
		assert.False(t, errs.Valid())
		assert.Equal(t, "Password must be at least 6 characters", errs["password"])
	})

	t.Run("missing name", func(t *testing.T) {
		form := valid
		form.Name = "   "
		errs := form.Validate()
		assert.Equal(t, "Name is required", errs["name"])
	})

	t.Run("terms not accepted", func(t *testing.T) {
		form := valid
		form.AcceptTerms = false
		errs := form.Validate()
		assert.Equal(t, "You must accept the terms", errs["terms"])
	})

	t.Run("unknown role", func(t *testing.T) {
		form := valid
		form.Role = "superadmin"
		errs := form.Validate()
		assert.True(t, errs.Has("role"))
	})
}

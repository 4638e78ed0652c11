package auth

import (
	"regexp"
	"strings"

	"github.com/scrapegenie/storefront/internal/marketplace"
)

// emailPattern is intentionally permissive, not full RFC 5322: a plausible
// local@domain.tld with a 2-3 character TLD segment is enough to catch
// typos before the backend sees the address.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// minPasswordLength applies to new accounts only; sign-in accepts whatever
// the account was created with.
const minPasswordLength = 6

// FieldErrors maps form field names to user-facing validation messages.
// An empty map means the form passed validation.
type FieldErrors map[string]string

// Has reports whether the field failed validation.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Valid reports whether the whole form passed.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// SignInForm carries the sign-in page's submitted values.
type SignInForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Validate checks the form client-side. On any failure the backend is never
// invoked; the caller re-renders with per-field messages.
func (f *SignInForm) Validate() FieldErrors {
	errs := make(FieldErrors)

	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	}

	return errs
}

// SignUpForm carries the sign-up page's submitted values. Role arrives as
// the raw select value and is parsed during validation.
type SignUpForm struct {
	Name        string
	Email       string
	Password    string
	Role        string
	AcceptTerms bool
}

// Validate checks the form client-side; same contract as SignInForm.
func (f *SignUpForm) Validate() FieldErrors {
	errs := make(FieldErrors)

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		errs["name"] = "Name is required"
	}

	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < minPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}

	if _, err := marketplace.ParseRole(f.Role); err != nil {
		errs["role"] = "Choose a valid account type"
	}

	if !f.AcceptTerms {
		errs["terms"] = "You must accept the terms"
	}

	return errs
}

// ParsedRole returns the validated role. Call after Validate succeeded.
func (f *SignUpForm) ParsedRole() marketplace.Role {
	role, _ := marketplace.ParseRole(f.Role)
	return role
}

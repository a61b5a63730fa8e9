// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/hay-kot/criterio"
)

// Required validates a value is non-empty after trimming whitespace.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}

// Email validates a bare email address such as "ana@example.com".
func Email(value string) error {
	if err := Required(value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != strings.TrimSpace(value) {
		return fmt.Errorf("is not a valid email address")
	}
	return nil
}

// Link validates an absolute http or https URL.
func Link(value string) error {
	if err := Required(value); err != nil {
		return err
	}
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

// RequiredField returns a criterio validator for a required value.
func RequiredField(field, value string) error {
	return criterio.Run(field, value, Required)
}

// EmailField returns a criterio validator for an email address.
func EmailField(field, value string) error {
	return criterio.Run(field, value, Email)
}

// LinkField returns a criterio validator for a document link.
func LinkField(field, value string) error {
	return criterio.Run(field, value, Link)
}

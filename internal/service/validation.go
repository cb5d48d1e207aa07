package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateCustomer checks every field and joins one ValidationError per
// failing field, in form order.
func ValidateCustomer(info domain.CustomerInfo) error {
	var errs []error

	if strings.TrimSpace(info.Name) == "" {
		errs = append(errs, &domain.ValidationError{Field: "name", Message: "Name is required"})
	}

	// The address is stored as entered, so the pattern sees the raw value.
	switch {
	case strings.TrimSpace(info.Email) == "":
		errs = append(errs, &domain.ValidationError{Field: "email", Message: "Email is required"})
	case !emailRegex.MatchString(info.Email):
		errs = append(errs, &domain.ValidationError{Field: "email", Message: "Email is invalid"})
	}

	if strings.TrimSpace(info.Phone) == "" {
		errs = append(errs, &domain.ValidationError{Field: "phone", Message: "Phone is required"})
	}

	if strings.TrimSpace(info.Address) == "" {
		errs = append(errs, &domain.ValidationError{Field: "address", Message: "Address is required"})
	}

	return errors.Join(errs...)
}

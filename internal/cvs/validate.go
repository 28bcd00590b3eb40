package cvs

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// FieldErrors maps field names to validation messages.
type FieldErrors map[string]string

const (
	maxShortField = 255
	maxPhoneField = 20
	maxEnumField  = 10
)

// ValidateStore checks the scalar fields of a store submission. Repeated
// groups are only shape-checked by normalization, never per element.
func ValidateStore(form url.Values) FieldErrors {
	errs := FieldErrors{}

	requireString(errs, form, "first_name", maxShortField)
	requireString(errs, form, "last_name", maxShortField)
	requireString(errs, form, "role", maxShortField)

	email := strings.TrimSpace(form.Get("email"))
	switch {
	case email == "":
		errs["email"] = "email is required"
	case len(email) > maxShortField:
		errs["email"] = "email must be at most 255 characters"
	default:
		if _, err := mail.ParseAddress(email); err != nil {
			errs["email"] = "email must be a valid email address"
		}
	}

	if linkedin := strings.TrimSpace(form.Get("linkedin")); linkedin != "" {
		if len(linkedin) > maxShortField {
			errs["linkedin"] = "linkedin must be at most 255 characters"
		} else if !validURL(linkedin) {
			errs["linkedin"] = "linkedin must be a valid URL"
		}
	}

	optionalString(errs, form, "location", maxShortField)
	optionalString(errs, form, "place_of_birth", maxShortField)
	optionalString(errs, form, "nationality", maxShortField)
	optionalString(errs, form, "phone_number", maxPhoneField)
	optionalString(errs, form, "gender", maxEnumField)

	if dob := strings.TrimSpace(form.Get("date_of_birth")); dob != "" {
		if _, err := time.Parse("2006-01-02", dob); err != nil {
			errs["date_of_birth"] = "date_of_birth must be a valid date (YYYY-MM-DD)"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireString(errs FieldErrors, form url.Values, name string, max int) {
	val := strings.TrimSpace(form.Get(name))
	if val == "" {
		errs[name] = name + " is required"
		return
	}
	if len(val) > max {
		errs[name] = name + " must be at most 255 characters"
	}
}

func optionalString(errs FieldErrors, form url.Values, name string, max int) {
	val := strings.TrimSpace(form.Get(name))
	if val != "" && len(val) > max {
		errs[name] = name + " is too long"
	}
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

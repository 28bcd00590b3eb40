package cvs

import (
	"net/url"
	"strings"
	"testing"
)

func validStoreForm() url.Values {
	return url.Values{
		"first_name": {"Ana"},
		"last_name":  {"Silva"},
		"role":       {"Engineer"},
		"email":      {"ana.silva@example.com"},
	}
}

func TestValidateStoreAcceptsMinimalForm(t *testing.T) {
	if errs := ValidateStore(validStoreForm()); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStoreRequiredFields(t *testing.T) {
	for _, field := range []string{"first_name", "last_name", "role", "email"} {
		form := validStoreForm()
		form.Del(field)
		errs := ValidateStore(form)
		if errs == nil || errs[field] == "" {
			t.Errorf("missing %s must produce a field error, got %v", field, errs)
		}
	}
}

func TestValidateStoreShapes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"bad email", "email", "not-an-email"},
		{"bad linkedin", "linkedin", "notaurl"},
		{"linkedin wrong scheme", "linkedin", "ftp://example.com/x"},
		{"phone too long", "phone_number", "+2449000000000000000000"},
		{"bad date", "date_of_birth", "01/05/1990"},
		{"gender too long", "gender", "unspecified"},
		{"first name too long", "first_name", strings.Repeat("a", 256)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validStoreForm()
			form.Set(tc.field, tc.value)
			errs := ValidateStore(form)
			if errs == nil || errs[tc.field] == "" {
				t.Fatalf("expected error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidateStoreOptionalFieldsMayBeEmpty(t *testing.T) {
	form := validStoreForm()
	form.Set("linkedin", "")
	form.Set("date_of_birth", "")
	form.Set("gender", "")
	if errs := ValidateStore(form); errs != nil {
		t.Fatalf("empty optional fields must pass, got %v", errs)
	}
}

func TestValidateStoreValidOptionalShapes(t *testing.T) {
	form := validStoreForm()
	form.Set("linkedin", "https://linkedin.com/in/anasilva")
	form.Set("date_of_birth", "1990-05-01")
	form.Set("gender", "female")
	form.Set("phone_number", "+244 900 000 000")
	if errs := ValidateStore(form); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

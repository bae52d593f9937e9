package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"", // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "09876543210", "+919876543210", "919876543210", "98765 43210"}
	invalid := []string{"12345", "987654321012345", "abcdefghij", ""}
	for _, m := range valid {
		if !IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = true, want false", m)
		}
	}
}

func TestIsValidAadhaar(t *testing.T) {
	valid := []string{"123456789012", "1234 5678 9012"}
	invalid := []string{"12345678901", "1234567890123", "12345678901a", ""}
	for _, a := range valid {
		if !IsValidAadhaar(a) {
			t.Errorf("IsValidAadhaar(%q) = false, want true", a)
		}
	}
	for _, a := range invalid {
		if IsValidAadhaar(a) {
			t.Errorf("IsValidAadhaar(%q) = true, want false", a)
		}
	}
}

func TestIsValidPAN(t *testing.T) {
	valid := []string{"ABCDE1234F", "abcde1234f"}
	invalid := []string{"ABCD1234EF", "ABCDE12345", "ABCDE1234", ""}
	for _, p := range valid {
		if !IsValidPAN(p) {
			t.Errorf("IsValidPAN(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPAN(p) {
			t.Errorf("IsValidPAN(%q) = true, want false", p)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "full_name", Message: "is required"},
		{Field: "daily_salary", Message: "must be positive"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["full_name"] != "is required" {
		t.Errorf("ToMap()[full_name] = %q", m["full_name"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

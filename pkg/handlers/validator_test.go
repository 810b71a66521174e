package handlers

import (
	"regexp"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidator(t *testing.T) {
	word := regexp.MustCompile(`^[a-z]+$`)

	cases := []struct {
		name  string
		value *string
		check func(v *Validator) *CustomError
		msg   string
	}{
		{"missing", nil, func(v *Validator) *CustomError { return v.Chain(v.Empty) }, "is required"},
		{"blank", strPtr("   "), func(v *Validator) *CustomError { return v.Chain(v.Empty) }, "cannot be blank"},
		{"short", strPtr("abc"), func(v *Validator) *CustomError { return v.MinLength(8) }, "must be at least 8 characters long"},
		{"long", strPtr("abcdef"), func(v *Validator) *CustomError { return v.MaxLength(5) }, "must be at most 5 characters long"},
		{"regexp", strPtr("ab1"), func(v *Validator) *CustomError { return v.Matches(word) }, "contains invalid characters"},
		{"email", strPtr("not-an-email"), func(v *Validator) *CustomError { return v.Email() }, "is not a valid email"},
		{"custom", strPtr(" x"), func(v *Validator) *CustomError {
			return v.Custom(func(s string) bool { return strings.TrimSpace(s) == s }, "cannot start or end with whitespace")
		}, "cannot start or end with whitespace"},
		{"ok", strPtr("gamer@ktap.dev"), func(v *Validator) *CustomError { return v.Chain(v.Empty, v.Email) }, ""},
	}

	for i, c := range cases {
		v := &Validator{location: "body", field: "field", value: c.value}
		err := c.check(v)
		if c.msg == "" {
			if err != nil {
				t.Fatalf("test case %d %s failed: unexpected error %+v", i, c.name, err)
			}
			continue
		}
		if err == nil || err.Msg != c.msg || err.Param != "field" {
			t.Fatalf("test case %d %s failed: expected %q but was %+v", i, c.name, c.msg, err)
		}
	}
}

func TestMergeErrors(t *testing.T) {
	a := &CustomError{Param: "a"}
	res := mergeErrors(nil, a, nil)
	if len(res) != 1 || res[0] != a {
		t.Fatalf("unexpected merge result %v", res)
	}
}

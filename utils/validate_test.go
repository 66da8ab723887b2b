package utils

import (
	"errors"
	"testing"
)

type sampleInput struct {
	Name  string  `validate:"required"`
	Email string  `validate:"required,email"`
	Price float64 `validate:"required,gt=0"`
}

func TestValidateStruct(t *testing.T) {
	valid := sampleInput{Name: "Ganesh Puja", Email: "pandit@example.com", Price: 3100}
	if err := Validate.Struct(valid); err != nil {
		t.Fatalf("valid input failed validation: %v", err)
	}

	invalid := sampleInput{Email: "not-an-email"}
	err := Validate.Struct(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}

	m := ValidationErrorMap(err)
	if m == nil {
		t.Fatal("ValidationErrorMap returned nil for validator error")
	}
	if m["Name"] != "required" {
		t.Errorf("Name error = %q, want %q", m["Name"], "required")
	}
	if m["Email"] != "email" {
		t.Errorf("Email error = %q, want %q", m["Email"], "email")
	}
	if m["Price"] != "required" {
		t.Errorf("Price error = %q, want %q", m["Price"], "required")
	}
}

func TestValidationErrorMapNonValidatorError(t *testing.T) {
	if m := ValidationErrorMap(errors.New("boom")); m != nil {
		t.Errorf("expected nil map for non-validator error, got %v", m)
	}
}

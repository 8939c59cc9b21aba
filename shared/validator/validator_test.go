package validator_test

import (
	"salon/shared/validator"
	"strings"
	"testing"
)

// Test structs for validation
type bookingTestStruct struct {
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required"       json:"phone"`
	Date     string `validate:"required"       json:"date"`
	Duration int    `validate:"gt=0"           json:"duration"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingTestStruct{
				Email:    "anna@example.com",
				Phone:    "+41799999999",
				Date:     "01.06.2025",
				Duration: 60,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingTestStruct{
				Phone:    "+41799999999",
				Date:     "01.06.2025",
				Duration: 60,
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &bookingTestStruct{
				Email:    "not-an-email",
				Phone:    "+41799999999",
				Date:     "01.06.2025",
				Duration: 60,
			},
			expectError: true,
		},
		{
			name: "non-positive duration",
			data: &bookingTestStruct{
				Email:    "anna@example.com",
				Phone:    "+41799999999",
				Date:     "01.06.2025",
				Duration: 0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := `{"email":"anna@example.com","phone":"+41799999999","date":"01.06.2025","duration":60}`

	data := bookingTestStruct{}
	if err := validator.Validate(strings.NewReader(body), &data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.Email != "anna@example.com" {
		t.Errorf("expected decoded email, got %s", data.Email)
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	data := bookingTestStruct{}
	err := validator.Validate(strings.NewReader(`{"email":`), &data)

	if err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("anna@example.com", "email"); err != nil {
		t.Errorf("expected no error for valid email, got %v", err)
	}

	if err := validator.ValidateVar("nope", "email"); err == nil {
		t.Error("expected error for invalid email, got nil")
	}
}

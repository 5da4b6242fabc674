package application

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "elementID",
			value:     "3f2c",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "elementID",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "elementID",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if !strings.Contains(err.Error(), "element ID is required") {
					t.Errorf("unexpected message %q", err.Error())
				}
			}
		})
	}
}

func TestValidatePropertyPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "simple", path: "label"},
		{name: "nested", path: "style.color"},
		{name: "empty", path: "", wantErr: true},
		{name: "empty segment", path: "style..color", wantErr: true},
		{name: "trailing dot", path: "style.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePropertyPath("propertyID", tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePropertyPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{raw: "hello", want: "hello"},
		{raw: "true", want: true},
		{raw: "False", want: false},
		{raw: "42", want: 42},
		{raw: "-7", want: -7},
		{raw: "0", want: 0},
		{raw: "1.5", want: 1.5},
		{raw: "007", want: "007"},
		{raw: `"true"`, want: "true"},
		{raw: "null", want: nil},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseValue(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{value: nil, want: "∅"},
		{value: "A", want: `"A"`},
		{value: true, want: "true"},
		{value: 3, want: "3"},
		{value: map[string]any{"a": 1, "b": 2}, want: "{2 fields}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Op: "undo", CommandType: "set-property-value", Err: ErrUnknownState}

	if !errors.Is(err, ErrUnknownState) {
		t.Error("expected CommandError to unwrap to ErrUnknownState")
	}
	if !strings.Contains(err.Error(), "undo set-property-value") {
		t.Errorf("unexpected message %q", err.Error())
	}

	if !errors.Is(&ElementNotFoundError{ID: "x"}, ErrNotFound) {
		t.Error("expected ElementNotFoundError to match ErrNotFound")
	}
}

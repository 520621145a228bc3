package item

import (
	"strings"
	"testing"
)

func TestCreateItemParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateItemParams
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid name",
			params:  CreateItemParams{Name: "wire-transfer"},
			wantErr: false,
		},
		{
			name:    "missing name",
			params:  CreateItemParams{Name: ""},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "name too long",
			params:  CreateItemParams{Name: strings.Repeat("a", 256)},
			wantErr: true,
			errMsg:  "name must be 255 characters or less",
		},
		{
			name:    "name exactly 255 chars",
			params:  CreateItemParams{Name: strings.Repeat("a", 255)},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("Validate() expected error, got nil")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

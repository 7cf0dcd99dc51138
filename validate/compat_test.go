package validate

import "testing"

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		declared string
		want     bool
		wantErr  bool
	}{
		{"1.0.0", true, false},
		{"1.4.2", true, false},
		{"", true, false},
		{"2.0.0", false, false},
		{"0.9.0", false, false},
		{"not-a-version", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			got, err := IsCompatible(tt.declared)
			if tt.wantErr {
				if err == nil {
					t.Fatal("IsCompatible() = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("IsCompatible() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsCompatible(%q) = %v, want %v", tt.declared, got, tt.want)
			}
		})
	}
}

package learner

import "testing"

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantName  string
		wantGuest bool
	}{
		{"empty", "", GuestName, true},
		{"whitespace only", "   ", GuestName, true},
		{"named", "Ahmed", "Ahmed", false},
		{"trimmed", "  Ahmed ", "Ahmed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fromEnv(tt.raw)
			if p.Name != tt.wantName {
				t.Errorf("name = %q, want %q", p.Name, tt.wantName)
			}
			if p.Guest != tt.wantGuest {
				t.Errorf("guest = %v, want %v", p.Guest, tt.wantGuest)
			}
		})
	}
}

func TestUserID(t *testing.T) {
	if got := (Profile{Name: GuestName, Guest: true}).UserID(); got != "" {
		t.Errorf("guest user id = %q, want empty", got)
	}
	if got := (Profile{Name: "Ahmed"}).UserID(); got != "Ahmed" {
		t.Errorf("user id = %q, want 'Ahmed'", got)
	}
}

func TestCurrentWithEnv(t *testing.T) {
	t.Setenv("PATENTE_LEARNER", "Sara")
	if got := Current().Name; got != "Sara" {
		t.Errorf("name = %q, want 'Sara'", got)
	}
}

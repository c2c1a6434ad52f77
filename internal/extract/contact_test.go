package extract

import (
	"testing"
)

func TestDetails(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantName  string
		wantEmail string
		wantPhone string
	}{
		{
			name:      "all fields present",
			text:      "John Smith\nSoftware Engineer\njohn.smith@example.com\n14155550123",
			wantName:  "John Smith",
			wantEmail: "john.smith@example.com",
			wantPhone: "14155550123",
		},
		{
			name:     "lowercase heading yields no name",
			text:     "curriculum vitae\nJane Doe\njane@example.org",
			wantName: "",

			wantEmail: "jane@example.org",
		},
		{
			name: "nothing found",
			text: "plain text with no contact details at all",
		},
		{
			name:      "phone too short is ignored",
			text:      "Anna Lee\ncall 555123",
			wantName:  "Anna Lee",
			wantPhone: "",
		},
		{
			name:      "first email and phone win",
			text:      "Bob Brown\na@b.co c@d.io\n123456789012 210987654321",
			wantName:  "Bob Brown",
			wantEmail: "a@b.co",
			wantPhone: "123456789012",
		},
	}

	ex := NewContactExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Details(tt.text)

			checkField(t, "name", got.Name, tt.wantName)
			checkField(t, "email", got.Email, tt.wantEmail)
			checkField(t, "phone", got.Phone, tt.wantPhone)
		})
	}
}

func checkField(t *testing.T, field string, got *string, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("%s: expected nil, got %q", field, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s: expected %q, got nil", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s: expected %q, got %q", field, want, *got)
	}
}

func TestDetails_CustomNameHeuristic(t *testing.T) {
	ex := NewContactExtractor().WithNameHeuristic(func(string) string {
		return "Override Name"
	})

	got := ex.Details("anything")
	if got.Name == nil || *got.Name != "Override Name" {
		t.Errorf("expected custom heuristic result, got %v", got.Name)
	}
}

func TestFirstTwoCapitalizedTokens(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"John Smith resume", "John Smith"},
		{"JOHN SMITH", "JOHN SMITH"},
		{"john Smith", ""},
		{"John smith", ""},
		{"John", ""},
		{"", ""},
		{"  \n\t  ", ""},
	}
	for _, tt := range tests {
		if got := FirstTwoCapitalizedTokens(tt.text); got != tt.want {
			t.Errorf("FirstTwoCapitalizedTokens(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

package challenge

import "testing"

func TestGetChallengeFromBank(t *testing.T) {
	p := &Provider{pick: func(n int) int { return 0 }}

	ch := p.GetChallenge("Math")
	if ch.Question != "What is the derivative of x^2?" {
		t.Errorf("unexpected first Math challenge: %q", ch.Question)
	}

	ch = p.GetChallenge("Chemistry")
	if ch.Answer != "Au" {
		t.Errorf("unexpected first Chemistry answer: %q", ch.Answer)
	}
}

func TestGetChallengeFallback(t *testing.T) {
	p := &Provider{pick: func(n int) int { return n - 1 }}

	ch := p.GetChallenge("Underwater Basket Weaving")
	if ch.Answer != "sucof" {
		t.Errorf("expected last fallback challenge, got answer %q", ch.Answer)
	}
}

func TestGetChallengeNeverPanics(t *testing.T) {
	p := NewProvider()
	for _, subject := range []string{"Math", "Physics", "Chemistry", "", "History"} {
		ch := p.GetChallenge(subject)
		if ch.Question == "" || ch.Answer == "" {
			t.Errorf("empty challenge for subject %q", subject)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name   string
		given  string
		answer string
		want   bool
	}{
		{"exact", "2x", "2x", true},
		{"case insensitive", "NEWTON", "newton", true},
		{"surrounding whitespace", "  12  ", "12", true},
		{"wrong", "11", "12", false},
		{"empty given", "", "12", false},
		{"internal whitespace differs", "kinetic  energy", "kinetic energy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAnswer(tt.given, Challenge{Answer: tt.answer})
			if got != tt.want {
				t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.given, tt.answer, got, tt.want)
			}
		})
	}
}

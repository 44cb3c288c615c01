package challenge

import (
	"math/rand/v2"
	"strings"
)

// Challenge is one question/answer pair used to gate a pause.
type Challenge struct {
	Question string
	Answer   string
}

// bank maps subject names to their challenge pools.
var bank = map[string][]Challenge{
	"Math": {
		{Question: "What is the derivative of x^2?", Answer: "2x"},
		{Question: "What is 15% of 200?", Answer: "30"},
		{Question: "What is the square root of 144?", Answer: "12"},
		{Question: "Solve for x: 2x + 5 = 15", Answer: "5"},
		{Question: "What is the value of pi to two decimal places?", Answer: "3.14"},
		{Question: "What is 8 cubed?", Answer: "512"},
		{Question: "What is the integral of 2x dx?", Answer: "x^2"},
		{Question: "Evaluate: 7 × 8", Answer: "56"},
	},
	"Physics": {
		{Question: "What is the standard unit of force?", Answer: "newton"},
		{Question: "What is the speed of light in vacuum (approx m/s)?", Answer: "300000000"},
		{Question: "F = m × ?", Answer: "a"},
		{Question: "What is the acceleration due to gravity on Earth (m/s^2)?", Answer: "9.8"},
		{Question: "What energy is associated with motion?", Answer: "kinetic"},
		{Question: "What particle has a negative charge?", Answer: "electron"},
		{Question: "What does temperature measure the average of?", Answer: "kinetic energy"},
	},
	"Chemistry": {
		{Question: "What is the chemical symbol for Gold?", Answer: "Au"},
		{Question: "What is the pH of pure water at 25°C?", Answer: "7"},
		{Question: "Na + Cl forms what common compound?", Answer: "NaCl"},
		{Question: "How many protons are in Carbon?", Answer: "6"},
		{Question: "What is the lightest element?", Answer: "hydrogen"},
		{Question: "What gas do plants absorb from the atmosphere?", Answer: "carbon dioxide"},
		{Question: "What is the most abundant gas in Earth's atmosphere?", Answer: "nitrogen"},
	},
}

// fallback covers custom subjects missing from the bank. The provider never
// errors on an unknown subject.
var fallback = []Challenge{
	{Question: "What is 12 + 15?", Answer: "27"},
	{Question: "How many hours are in 3 days?", Answer: "72"},
	{Question: "What is 9 × 9?", Answer: "81"},
	{Question: "What is the capital of France?", Answer: "Paris"},
	{Question: "Spell the word 'Focus' backwards.", Answer: "sucof"},
}

// Provider hands out challenges for the pause gate.
type Provider struct {
	pick func(n int) int
}

// NewProvider creates a provider with uniform random selection.
func NewProvider() *Provider {
	return &Provider{pick: rand.IntN}
}

// GetChallenge returns a random challenge for the subject, falling back to
// generic questions for subjects not in the bank.
func (p *Provider) GetChallenge(subject string) Challenge {
	pool, ok := bank[subject]
	if !ok || len(pool) == 0 {
		pool = fallback
	}
	return pool[p.pick(len(pool))]
}

// CheckAnswer compares a free-text answer to the expected one using
// case-insensitive, whitespace-trimmed exact matching.
func CheckAnswer(given string, c Challenge) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(c.Answer))
}

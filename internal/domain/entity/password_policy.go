package entity

import "strings"

// PasswordPolicy checks a plaintext password before it is hashed. Which
// policy applies is a wiring decision, not an entity invariant: the entity
// itself only requires a non-empty stored hash.
type PasswordPolicy interface {
	Validate(password string) error
}

// PresencePolicy accepts any non-blank password.
type PresencePolicy struct{}

func (PresencePolicy) Validate(password string) error {
	if strings.TrimSpace(password) == "" {
		return newUserError("Password is required")
	}
	return nil
}

// StrengthPolicy scores a password by length bounds and character classes
// and rejects anything below Medium.
type StrengthPolicy struct{}

var strengthLevels = map[int]string{
	1: "Very Weak",
	2: "Weak",
	3: "Medium",
	4: "Strong",
}

const passwordSpecials = "@.#$!%^&*.?"

func (StrengthPolicy) Validate(password string) error {
	if strings.TrimSpace(password) == "" {
		return newUserError("Password is required")
	}
	switch label := scorePassword(password); label {
	case "Too short", "Too lengthy", "Very Weak", "Weak":
		return newUserError("Password is " + label)
	default:
		return nil
	}
}

func scorePassword(password string) string {
	if len(password) > 30 {
		return "Too lengthy"
	}
	if len(password) < 8 {
		return "Too short"
	}

	score := 0
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsAny(password, passwordSpecials) {
		score++
	}
	return strengthLevels[score]
}

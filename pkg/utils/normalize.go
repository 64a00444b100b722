package utils

import "strings"

// NormalizeEmail is applied on every path an email enters the system:
// sign-up, login, and the payment webhook.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

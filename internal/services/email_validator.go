package services

import (
	"context"
	"strings"
	"time"
)

// EmailValidator stands in for the external address verification API. The
// configured delay models the provider's latency; the check itself is the
// provider's business, not ours.
type EmailValidator struct {
	delay time.Duration
}

func NewEmailValidator(delay time.Duration) *EmailValidator {
	return &EmailValidator{delay: delay}
}

func (v *EmailValidator) ValidateEmail(ctx context.Context, email string) bool {
	if v.delay > 0 {
		timer := time.NewTimer(v.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

package usecase

import (
	"strings"

	"noirlabs_billing/internal/domain/entities"
)

// PayerMatchesIdentity is the payer policy: the invoice's payer email must be
// byte-for-byte the authenticated user's email. No case folding, no trimming.
func PayerMatchesIdentity(identity entities.Identity, payerEmail string) bool {
	return identity.Email == payerEmail
}

// IsAdmin reports whether the identity's email is on the operator list.
// An empty list admits nobody.
func IsAdmin(identity entities.Identity, adminEmails []string) bool {
	email := strings.TrimSpace(identity.Email)
	if email == "" {
		return false
	}
	for _, admin := range adminEmails {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}

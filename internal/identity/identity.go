// Package identity derives a canonical (first, last) name pair from a user
// identity and matches it against the upstream customer directory.
package identity

import (
	"strings"

	"github.com/rickeychiu/budgeteer/internal/core"
)

// DeriveName extracts the first/last name pair the directory is matched on.
//
// For a full display name, the first whitespace token is the first name and
// the LAST token is the last name; middle tokens are discarded. This is a
// documented simplification that misparses multi-part surnames ("Ana de la
// Cruz" -> "Ana Cruz"); a single-token name yields that token for both
// parts, matching upstream behavior.
func DeriveName(id core.UserIdentity) (first, last string, err error) {
	switch id.Form {
	case core.FullNameForm:
		parts := strings.Fields(id.Name)
		if len(parts) == 0 {
			return "", "", core.ErrIdentityUnresolvable
		}
		return parts[0], parts[len(parts)-1], nil
	case core.SplitNameForm:
		if id.Given == "" || id.Family == "" {
			return "", "", core.ErrIdentityUnresolvable
		}
		return id.Given, id.Family, nil
	default:
		return "", "", core.ErrIdentityUnresolvable
	}
}

// Resolve matches the identity against the customer directory using
// case-insensitive equality on both name parts. Zero matches is
// ErrCustomerNotFound. Uniqueness is not enforced upstream, so multiple
// matches take the first one; that is a policy choice, not an invariant.
func Resolve(id core.UserIdentity, customers []core.Customer) (core.Customer, error) {
	first, last, err := DeriveName(id)
	if err != nil {
		return core.Customer{}, err
	}

	for _, c := range customers {
		if strings.EqualFold(c.FirstName, first) && strings.EqualFold(c.LastName, last) {
			return c, nil
		}
	}

	return core.Customer{}, core.ErrCustomerNotFound
}

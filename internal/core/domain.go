package core

import "strings"

// NameForm discriminates the two naming conventions an identity provider
// may supply: a single display string, or separate given/family fields.
type NameForm int

const (
	FullNameForm NameForm = iota + 1
	SplitNameForm
)

type (
	// UserIdentity is the loosely structured identity object handed to us by
	// the authentication collaborator. Exactly one naming convention is
	// present per caller; Form records which one so resolution never has to
	// sniff field presence.
	UserIdentity struct {
		Form   NameForm
		Name   string // FullNameForm: the whole display name
		Given  string // SplitNameForm: given name
		Family string // SplitNameForm: family name
	}

	// Customer is a record in the upstream customer directory.
	Customer struct {
		ID        string
		FirstName string
		LastName  string
	}

	// Account links a customer to purchase history.
	Account struct {
		ID         string
		CustomerID string
	}

	// Merchant is an upstream merchant directory entry. RawCategories is the
	// free-form tag list attached by the data source; it is never mutated
	// here. Resolved umbrella categories live on the aggregate instead.
	Merchant struct {
		ID            string
		Name          string
		Address       string
		RawCategories []string
	}

	// Purchase is an immutable upstream transaction record. Amount is in
	// dollars as the source reports it.
	Purchase struct {
		ID           string
		MerchantID   string
		Amount       float64
		PurchaseDate string
	}
)

// IdentityFromFullName builds an identity carrying a single display name.
func IdentityFromFullName(name string) UserIdentity {
	return UserIdentity{Form: FullNameForm, Name: strings.TrimSpace(name)}
}

// IdentityFromParts builds an identity from separate given/family fields.
func IdentityFromParts(given, family string) UserIdentity {
	return UserIdentity{
		Form:   SplitNameForm,
		Given:  strings.TrimSpace(given),
		Family: strings.TrimSpace(family),
	}
}

// DisplayName renders the customer's name as shown on the aggregate.
func (c Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

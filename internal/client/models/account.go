// Package models defines the account, order and session types the
// reconciliation engine moves between tiers. All types marshal to JSON:
// the same shape is stored in the local cache and in the remote
// document store.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// ProvisionalIDPrefix marks account ids generated locally before the
// auth directory has issued a canonical id.
const ProvisionalIDPrefix = "local-"

// Address is a postal address, stored both on the account profile and
// on each order as the shipping address.
type Address struct {
	PostalCode string `json:"postalCode"`
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building,omitempty"`
}

// Account represents one customer or administrator. Exactly one account
// may exist per normalized email per tier; the id is canonical once it
// has been issued by the auth directory.
type Account struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Birthdate string  `json:"birthdate,omitempty"`
	Address   Address `json:"address"`

	// CredentialHash is an argon2id hash allowing tiers without their
	// own verifier (local cache, document store) to check a password
	// offline. Never a recoverable secret.
	CredentialHash string `json:"credentialHash,omitempty"`
}

// NewProvisionalID returns a fresh locally-generated account id, used
// until the account is migrated into the auth directory.
func NewProvisionalID() string {
	return ProvisionalIDPrefix + uuid.NewString()
}

// IsProvisional reports whether the account still carries a
// locally-generated id.
func (a *Account) IsProvisional() bool {
	return strings.HasPrefix(a.ID, ProvisionalIDPrefix)
}

// ProfilePatch carries partial profile updates. Nil fields are left
// untouched; address sub-fields merge field-by-field.
type ProfilePatch struct {
	Name      *string       `json:"name,omitempty"`
	Phone     *string       `json:"phone,omitempty"`
	Birthdate *string       `json:"birthdate,omitempty"`
	Address   *AddressPatch `json:"address,omitempty"`
}

type AddressPatch struct {
	PostalCode *string `json:"postalCode,omitempty"`
	Region     *string `json:"region,omitempty"`
	City       *string `json:"city,omitempty"`
	Street     *string `json:"street,omitempty"`
	Building   *string `json:"building,omitempty"`
}

// Apply merges the patch into the account in place.
func (p *ProfilePatch) Apply(a *Account) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Birthdate != nil {
		a.Birthdate = *p.Birthdate
	}
	if p.Address != nil {
		p.Address.apply(&a.Address)
	}
}

func (p *AddressPatch) apply(a *Address) {
	if p.PostalCode != nil {
		a.PostalCode = *p.PostalCode
	}
	if p.Region != nil {
		a.Region = *p.Region
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.Building != nil {
		a.Building = *p.Building
	}
}

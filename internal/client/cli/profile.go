package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

func (a *App) ShowProfile(ctx context.Context) {
	session := a.controller.Current()
	if !session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	acc := session.Account
	fmt.Fprintf(a.out, "Name:      %s\n", acc.Name)
	fmt.Fprintf(a.out, "Email:     %s\n", acc.Email)
	fmt.Fprintf(a.out, "Phone:     %s\n", acc.Phone)
	if acc.Birthdate != "" {
		fmt.Fprintf(a.out, "Birthdate: %s\n", acc.Birthdate)
	}
	addr := acc.Address
	fmt.Fprintf(a.out, "Address:   %s, %s, %s, %s %s\n",
		addr.PostalCode, addr.Region, addr.City, addr.Street, addr.Building)
}

// UpdateProfile prompts for new values; empty input keeps the current
// value, so the patch only carries the fields the user actually changed.
func (a *App) UpdateProfile(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	patch := models.ProfilePatch{}

	var err error
	if patch.Name, err = getOptionalText(a.reader, "Name", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if patch.Phone, err = getOptionalText(a.reader, "Phone", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if patch.Birthdate, err = getOptionalText(a.reader, "Birthdate", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	addr := models.AddressPatch{}
	if addr.PostalCode, err = getOptionalText(a.reader, "Postal code", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if addr.Region, err = getOptionalText(a.reader, "Region", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if addr.City, err = getOptionalText(a.reader, "City", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if addr.Street, err = getOptionalText(a.reader, "Street", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if addr.Building, err = getOptionalText(a.reader, "Building", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if addr != (models.AddressPatch{}) {
		patch.Address = &addr
	}

	result := a.controller.UpdateProfile(ctx, patch)
	if !result.Success {
		fmt.Fprintf(a.out, "Update failed: %s\n", result.Message)
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
}

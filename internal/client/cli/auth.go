package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	result := a.controller.Login(ctx, email, password)
	if !result.Success {
		fmt.Fprintf(a.out, "Login failed: %s\n", result.Message)
		return
	}

	session := a.controller.Current()
	fmt.Fprintf(a.out, "Logged in as %s (%d orders)\n", session.Account.Email, len(session.Orders))
}

func (a *App) Register(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	phone, err := getSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	profile := models.Account{Email: email, Name: name, Phone: phone}

	result := a.controller.Register(ctx, profile, password)
	if !result.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", result.Message)
		return
	}

	fmt.Fprintln(a.out, "Registration successful, you are logged in")
}

func (a *App) Logout(ctx context.Context) {
	result := a.controller.Logout(ctx)
	if !result.Success {
		fmt.Fprintf(a.out, "Logout failed: %s\n", result.Message)
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) WhoAmI(ctx context.Context) {
	session := a.controller.Current()
	if !session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> id=%s\n", session.Account.Name, session.Account.Email, session.Account.ID)
}

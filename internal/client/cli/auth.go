package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/router"
	"github.com/dmitrijs2005/blogcli/internal/common"
)

var ErrLoginRequired = errors.New("login required")

// Register prompts for the account fields and creates the account. The
// register page is guest-only, so a signed-in user is sent home instead.
func (a *App) Register(ctx context.Context) error {
	if err := a.router.Push("/register"); err != nil {
		a.log.Error(ctx, "navigation failed", "error", err)
		return err
	}
	if a.router.Current().Name != router.Register {
		fmt.Fprintln(a.out, "Already logged in.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	nickname, err := getSimpleText(a.reader, "Enter nickname (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		Nickname: nickname,
	})
	if err != nil {
		a.log.Error(ctx, "register failed", "username", username, "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Account %s created, you can log in now.\n", u.Username)
	return a.router.Replace(router.LoginPath)
}

// Login opens the login page (keeping a pending redirect if the guard
// already put us there), asks for credentials and, on success, continues
// to the page that required the login.
func (a *App) Login(ctx context.Context) error {
	if a.router.Current().Name != router.Login {
		if err := a.router.Push(router.LoginPath); err != nil {
			a.log.Error(ctx, "navigation failed", "error", err)
			return err
		}
	}
	if a.router.Current().Name != router.Login {
		fmt.Fprintln(a.out, "Already logged in.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		a.log.Error(ctx, "login failed", "username", username, "error", err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.router.Replace(a.router.RedirectTarget())
}

// Logout ends the session locally. The current page is re-checked so a
// protected view is left immediately.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	if err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
	}
	if rerr := a.router.Replace(a.router.Current().FullPath()); rerr != nil {
		a.log.Error(ctx, "navigation failed", "error", rerr)
	}
	fmt.Fprintln(a.out, "Logged out")
	return err
}

// Me refreshes and prints the profile of the signed-in user.
func (a *App) Me(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return ErrLoginRequired
	}
	if err := a.session.FetchProfile(ctx); err != nil {
		a.log.Error(ctx, "fetch profile failed", "error", err)
		return err
	}
	u := a.session.User()
	if u == nil {
		return nil
	}
	printUser(a.out, u)
	return nil
}

// Status prints what the client knows locally: endpoint, location and
// session, including the token's claims when it decodes.
func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "API:       %s (timeout %s)\n", a.client.BaseURL(), a.client.Timeout())
	fmt.Fprintf(a.out, "Location:  %s\n", a.router.Current().FullPath())

	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Session:   anonymous")
		return nil
	}

	who := "unknown user"
	if u := a.session.User(); u != nil {
		who = u.Username
	}
	fmt.Fprintf(a.out, "Session:   %s (admin: %t)\n", who, a.session.IsAdmin())

	claims, err := a.session.TokenClaims()
	if err != nil {
		a.log.Debug(ctx, "token claims unavailable", "error", err)
		return nil
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		state := "valid"
		if time.Now().After(exp) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token:     %s until %s\n", state, exp.Local().Format(time.RFC1123))
	}
	return nil
}

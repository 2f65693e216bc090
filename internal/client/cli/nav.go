package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogcli/internal/client/router"
)

// Go navigates to an arbitrary view path.
func (a *App) Go(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: go <path>")
		return errUsage
	}
	return a.navigate(ctx, args[0])
}

func (a *App) Back(ctx context.Context) error {
	return a.move(ctx, a.router.Back)
}

func (a *App) Forward(ctx context.Context) error {
	return a.move(ctx, a.router.Forward)
}

func (a *App) move(ctx context.Context, step func() error) error {
	if err := step(); err != nil {
		if errors.Is(err, router.ErrNoHistory) {
			fmt.Fprintln(a.out, "Nothing there.")
		} else {
			a.log.Error(ctx, "navigation failed", "error", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Now at", a.router.Current().FullPath())
	return nil
}

// navigate pushes path and reports where the guard let us land.
func (a *App) navigate(ctx context.Context, path string) error {
	if err := a.router.Push(path); err != nil {
		if errors.Is(err, router.ErrRouteNotFound) {
			fmt.Fprintln(a.out, "No such page:", path)
		} else {
			a.log.Error(ctx, "navigation failed", "path", path, "error", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Now at", a.router.Current().FullPath())
	return nil
}

// enter pushes path and reports whether the guard allowed the route named
// want. When it did not, the user is told why.
func (a *App) enter(ctx context.Context, path, want string) (bool, error) {
	if err := a.router.Push(path); err != nil {
		a.log.Error(ctx, "navigation failed", "path", path, "error", err)
		return false, err
	}
	cur := a.router.Current()
	if cur.Name == want {
		return true, nil
	}
	if cur.Name == router.Login {
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
		return false, ErrLoginRequired
	}
	fmt.Fprintln(a.out, "Redirected to", cur.FullPath())
	return false, nil
}

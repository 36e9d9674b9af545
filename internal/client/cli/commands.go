package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dmitrijs2005/gophpass/internal/client/client"
	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/response"
)

// getSimpleText and getPassword can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Forgot(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	env, err := a.client.Forgot(ctx, userName)
	return a.report(env, err)
}

func (a *App) Reset(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	env, err := a.client.Reset(ctx, userName, password)
	return a.report(env, err)
}

// Login authenticates and, on success, remembers the username for the prompt.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	env, err := a.client.Login(ctx, userName, password)
	if err := a.report(env, err); err != nil {
		return err
	}
	if env.OK() {
		a.userName = userName
	}
	return nil
}

func (a *App) Change(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	oldPassword, err := getPassword("Enter current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	env, err := a.client.Change(ctx, oldPassword, newPassword)
	if errors.Is(err, client.ErrUnauthorized) {
		a.client.Logout()
		a.userName = ""
		fmt.Fprintln(a.out, "Session expired, please login again")
		return err
	}
	return a.report(env, err)
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) report(env *response.Envelope, err error) error {
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			fmt.Fprintln(a.out, "Server unavailable, try again later")
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}
	printEnvelope(a.out, env)
	return nil
}

func printEnvelope(w io.Writer, env *response.Envelope) {
	if env == nil {
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", env.Code, env.Message)

	fields := make([]string, 0, len(env.Errors))
	for f := range env.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "  %s: %s\n", f, strings.Join(env.Errors[f], "; "))
	}
}

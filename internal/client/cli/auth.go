package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = func(prompt string) ([]byte, error) { return GetPassword(os.Stdout, prompt) }
	getMultiline  = GetMultiline
)

var errPasswordMismatch = errors.New("passwords do not match")

// readNewPassword asks twice and returns the password only if both match.
func readNewPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(prompt)
	if err != nil {
		return nil, err
	}
	again, err := getPassword("Repeat " + strings.ToLower(prompt))
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(again)
	if !bytes.Equal(pw, again) {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}

func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := readNewPassword("Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	if _, err := a.auth.Register(rctx, name, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created. Type 'login' to sign in.")
	return nil
}

// Login prompts for credentials and, when the account asks for it, a
// second factor. The session only opens after both steps.
func (a *App) Login(ctx context.Context, _ []string) error {
	if a.auth.Session() != nil {
		return errors.New("already logged in, type 'logout' first")
	}
	prompt := "Enter email"
	last := a.auth.LastEmail(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Enter email [%s]", last)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = last
	}

	password, err := getPassword("Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.stopMonitor()
	a.gate.SetLoading()
	defer func() {
		if a.auth.Session() == nil {
			a.gate.SetUnauthenticated()
		}
	}()

	rctx, cancel := a.requestContext(ctx)
	out, err := a.auth.Login(rctx, email, password)
	cancel()
	if err != nil {
		return err
	}

	if out.SecondFactorRequired {
		code, err := getSimpleText(a.reader, fmt.Sprintf("Second factor required (%s). Enter authenticator or backup code", strings.Join(out.Methods, ", ")), a.out)
		if err != nil {
			a.auth.Forget()
			return err
		}
		rctx, cancel := a.requestContext(ctx)
		err = a.auth.VerifySecondFactor(rctx, code)
		cancel()
		if err != nil {
			a.auth.Forget()
			return err
		}
	}

	if err := a.openSession(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	s := a.auth.Session()
	p := a.gate.Principal()
	if s == nil || p == nil {
		return errors.New("no session")
	}
	fmt.Fprintf(a.out, "%s  user=%s  role=%s  2fa=%t  key-generation=%d\n", s.Email, p.UserID, p.Role, p.SecondFactor, s.KeyGeneration)
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	current, err := getPassword("Current master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := readNewPassword("New master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	fmt.Fprintln(a.out, "Re-encrypting vault...")
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.auth.ChangePassword(rctx, current, next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Master password changed. All other sessions were signed out.")
	return nil
}

func (a *App) TwoFactorSetup(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestContext(ctx)
	setup, err := a.auth.TwoFactorSetup(rctx)
	cancel()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Add this account to your authenticator app:\n  secret: %s\n  uri:    %s\n", setup.Secret, setup.URI)

	code, err := getSimpleText(a.reader, "Enter the current code to confirm", a.out)
	if err != nil {
		return err
	}
	rctx, cancel = a.requestContext(ctx)
	defer cancel()
	codes, err := a.auth.TwoFactorConfirm(rctx, setup.Secret, code)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Two-factor authentication enabled. Store these backup codes safely, each works once:")
	for _, c := range codes {
		fmt.Fprintln(a.out, "  "+c)
	}
	return nil
}

func (a *App) TwoFactorStatus(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	st, err := a.auth.TwoFactorStatus(rctx)
	if err != nil {
		return err
	}
	if !st.Enabled {
		fmt.Fprintln(a.out, "Two-factor authentication is off.")
		return nil
	}
	fmt.Fprintf(a.out, "Two-factor authentication is on, %d backup code(s) left.\n", st.BackupCodesLeft)
	return nil
}

func (a *App) TwoFactorDisable(ctx context.Context, _ []string) error {
	password, err := getPassword("Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.auth.TwoFactorDisable(rctx, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Two-factor authentication disabled.")
	return nil
}

func (a *App) Passkeys(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	keys, err := a.auth.Passkeys(rctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No passkeys registered.")
		return nil
	}
	for _, k := range keys {
		line := fmt.Sprintf("%s  %s  added %s", k.ID, k.Name, k.CreatedAt.Format("2006-01-02"))
		if k.Flagged {
			line += "  [FLAGGED: possible clone]"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) RemovePasskey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: passkey-remove <id>")
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.auth.RemovePasskey(rctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Passkey removed.")
	return nil
}

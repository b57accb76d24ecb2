package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eterbox/internal/client/vault"
	"github.com/dmitrijs2005/eterbox/internal/common"
)

func (a *App) List(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	entries, err := a.vault.List(rctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Vault is empty.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %-24s %s\n", e.ID, e.Name, e.URL)
	}
	return nil
}

func (a *App) Add(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("name is required")
	}
	url, err := getSimpleText(a.reader, "URL (optional)", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	notes, err := getMultiline(a.reader, "Notes", a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	id, err := a.vault.Add(rctx, name, url, &vault.Item{Username: username, Password: string(password), Notes: notes})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved as", id)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <id>")
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	e, item, err := a.vault.Show(rctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Name:     %s\n", e.Name)
	if e.URL != "" {
		fmt.Fprintf(a.out, "URL:      %s\n", e.URL)
	}
	fmt.Fprintf(a.out, "Username: %s\nPassword: %s\n", item.Username, item.Password)
	if item.Notes != "" {
		fmt.Fprintf(a.out, "Notes:\n%s\n", item.Notes)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	if err := a.vault.Delete(rctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
)

const adminAttemptsLimit = 50

func (a *App) AdminAttempts(ctx context.Context, args []string) error {
	email := ""
	if len(args) > 0 {
		email = args[0]
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	attempts, err := a.admin.AdminListLoginAttempts(rctx, email, adminAttemptsLimit)
	if err != nil {
		return err
	}
	for _, at := range attempts {
		result := "ok"
		if !at.Success {
			result = "FAIL " + at.Reason
		}
		fmt.Fprintf(a.out, "%s  %-30s %-16s %s\n", at.CreatedAt.Format("2006-01-02 15:04:05"), at.Email, at.RemoteAddr, result)
	}
	return nil
}

func (a *App) AdminRevoke(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: admin-revoke <user-id>")
	}
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	n, err := a.admin.AdminRevokeUser(rctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Revoked %d session(s).\n", n)
	return nil
}

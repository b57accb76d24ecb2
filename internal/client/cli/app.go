package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/config"
	"github.com/dmitrijs2005/eterbox/internal/client/inactivity"
	"github.com/dmitrijs2005/eterbox/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/eterbox/internal/client/services"
	"github.com/dmitrijs2005/eterbox/internal/cryptox"
	"github.com/dmitrijs2005/eterbox/internal/filex"
	"github.com/dmitrijs2005/eterbox/internal/guard"
	"github.com/dmitrijs2005/eterbox/internal/logging"
)

const dataDirName = ".eterbox"

// adminAPI is the part of the server API with no client-side logic.
type adminAPI interface {
	AdminListLoginAttempts(ctx context.Context, email string, limit int) ([]client.LoginAttempt, error)
	AdminRevokeUser(ctx context.Context, userID string) (int64, error)
}

type App struct {
	config *config.Config
	auth   services.AuthService
	vault  services.VaultService
	admin  adminAPI
	gate   *guard.Gate
	clock  inactivity.Clock
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	monitor *inactivity.Monitor
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	l := logging.NewJSONLogger(os.Stderr, "warn")

	dsn, err := databasePath(c.DatabasePath)
	if err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, metadata.NewSQLiteRepository(db), cryptox.DefaultKDFParams())
	vs := services.NewVaultService(apiClient, as)

	return newApp(c, as, vs, apiClient, inactivity.SystemClock{}, l, os.Stdin, os.Stdout), nil
}

// databasePath places a bare file name in the per-user data directory.
// Paths with a directory part and sqlite URIs are used as given.
func databasePath(p string) (string, error) {
	if filepath.Dir(p) != "." || strings.HasPrefix(p, ":") || strings.HasPrefix(p, "file:") {
		return p, nil
	}
	dir, err := filex.EnsureDataDir("", dataDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, p), nil
}

func newApp(c *config.Config, as services.AuthService, vs services.VaultService, admin adminAPI,
	clock inactivity.Clock, l logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		auth:   as,
		vault:  vs,
		admin:  admin,
		gate:   guard.NewGate(),
		clock:  clock,
		log:    l.With("module", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)
	defer a.stopMonitor()

	fmt.Fprintln(a.out, "Welcome to EterBox (type 'help' for commands)")

	pctx, cancel := a.requestContext(ctx)
	if err := a.auth.Ping(pctx); err != nil {
		fmt.Fprintln(a.out, "Server unreachable:", describe(err))
	}
	cancel()
	a.gate.SetUnauthenticated()

	runREPL(ctx, a.commands(), a.gate, a.touch, a.status, bufio.NewScanner(a.reader))
}

func (a *App) commands() []command {
	return []command{
		{name: "register", role: guard.RoleNone, run: a.Register},
		{name: "login", role: guard.RoleNone, run: a.Login},
		{name: "whoami", role: guard.RoleUser, run: a.WhoAmI},
		{name: "list", role: guard.RoleUser, run: a.List},
		{name: "add", role: guard.RoleUser, run: a.Add},
		{name: "show", usage: "<id>", role: guard.RoleUser, run: a.Show},
		{name: "delete", usage: "<id>", role: guard.RoleUser, run: a.Delete},
		{name: "passwd", role: guard.RoleUser, run: a.ChangePassword},
		{name: "2fa-setup", role: guard.RoleUser, run: a.TwoFactorSetup},
		{name: "2fa-status", role: guard.RoleUser, run: a.TwoFactorStatus},
		{name: "2fa-disable", role: guard.RoleUser, run: a.TwoFactorDisable},
		{name: "passkeys", role: guard.RoleUser, run: a.Passkeys},
		{name: "passkey-remove", usage: "<id>", role: guard.RoleUser, run: a.RemovePasskey},
		{name: "stay", role: guard.RoleUser, run: a.Stay},
		{name: "logout", role: guard.RoleUser, run: a.Logout},
		{name: "logout-all", role: guard.RoleUser, run: a.LogoutAll},
		{name: "admin-attempts", usage: "[email]", role: guard.RoleAdmin, run: a.AdminAttempts},
		{name: "admin-revoke", usage: "<user-id>", role: guard.RoleAdmin, run: a.AdminRevoke},
	}
}

func (a *App) status() string {
	p := a.gate.Principal()
	if p == nil {
		return ""
	}
	s := a.auth.Session()
	if s == nil {
		return ""
	}
	if p.Role == guard.RoleAdmin {
		return fmt.Sprintf(" (%s, admin)", s.Email)
	}
	return fmt.Sprintf(" (%s)", s.Email)
}

func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

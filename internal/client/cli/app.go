package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/llmpid-console/internal/client/client"
	"github.com/dmitrijs2005/llmpid-console/internal/client/config"
	"github.com/dmitrijs2005/llmpid-console/internal/client/gateway"
	"github.com/dmitrijs2005/llmpid-console/internal/client/guard"
	"github.com/dmitrijs2005/llmpid-console/internal/client/metrics"
	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
	"github.com/dmitrijs2005/llmpid-console/internal/client/services"
	"github.com/dmitrijs2005/llmpid-console/internal/client/session"
	"github.com/dmitrijs2005/llmpid-console/internal/filex"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
)

// Deps are the collaborators an App is built from.
type Deps struct {
	Client   client.Client
	Store    *session.Store
	Prefs    services.PreferencesService // optional
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Logger   logging.Logger
	In       io.Reader
	Out      io.Writer

	// PageLimit is the history page size used when no preference is saved.
	PageLimit int
}

type App struct {
	log   logging.Logger
	store *session.Store
	nav   *guard.Navigator

	auth           services.AuthService
	classification services.ClassificationService
	systems        services.ExternalSystemService
	overview       services.OverviewService
	prefs          services.PreferencesService

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	reader *bufio.Reader
	outMu  sync.Mutex
	out    io.Writer

	queryMu sync.Mutex
	query   models.ListQuery

	// loggingOut is set while an explicit logout runs so the session
	// watcher does not report it as an expiry.
	loggingOut atomic.Bool

	unwatch func()
	closers []func() error
}

// NewApp wires the console from configuration: the session store, the
// gateway client, the REST client, the optional local database and the
// services on top of them.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	store := session.NewStore()

	httpClient := gateway.New(gateway.Options{
		Store:   store,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
		Metrics: m,
	})
	api, err := client.NewHTTPClient(cfg.APIBaseURL, httpClient)
	if err != nil {
		return nil, err
	}

	d := Deps{
		Client:    api,
		Store:     store,
		Registry:  reg,
		Metrics:   m,
		Logger:    log,
		In:        in,
		Out:       out,
		PageLimit: cfg.PageLimit,
	}

	var closers []func() error
	if cfg.DBPath != "" {
		if err := filex.EnsureFileDir(cfg.DBPath); err != nil {
			return nil, fmt.Errorf("init local database: %w", err)
		}
		db, err := client.InitDatabase(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("init local database: %w", err)
		}
		d.Prefs = services.NewPreferencesService(db)
		closers = append(closers, db.Close)
	}

	a := New(d)
	a.closers = append(a.closers, closers...)
	return a, nil
}

// New builds an App from ready collaborators.
func New(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New(d.Registry)
	}

	auth := services.NewAuthService(d.Client, d.Store, d.Prefs, d.Logger)
	cs := services.NewClassificationService(d.Client)
	es := services.NewExternalSystemService(d.Client)

	a := &App{
		log:            d.Logger.With("module", "cli"),
		store:          d.Store,
		nav:            guard.NewNavigator(guard.New(d.Store), guard.Root),
		auth:           auth,
		classification: cs,
		systems:        es,
		overview:       services.NewOverviewService(auth, cs, es),
		prefs:          d.Prefs,
		registry:       d.Registry,
		metrics:        d.Metrics,
		reader:         bufio.NewReader(d.In),
		out:            d.Out,
		query:          models.DefaultListQuery().WithLimit(d.PageLimit),
	}

	// The navigator subscribes first so the redirect has happened by the
	// time the watcher reports the expiry.
	a.nav.Attach(d.Store)
	a.unwatch = d.Store.Subscribe(a.onSessionChange)
	a.nav.OnChange(func(from guard.Route, dec guard.Decision) {
		a.log.Debug(context.Background(), "view changed", "from", from, "to", dec.Route, "redirected", dec.Redirected)
	})
	return a
}

func (a *App) onSessionChange(c session.Change) {
	if !c.Cleared() {
		return
	}
	a.metrics.IncrementSessionCleared()
	if !a.loggingOut.Load() {
		a.println("Session expired, please log in again")
	}
}

// Run loads saved preferences and blocks in the REPL until the input ends
// or the operator exits.
func (a *App) Run(ctx context.Context) {
	a.loadPreferences(ctx)
	a.println("LLMPID console (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.println)
}

// Close detaches the App from the store and releases local resources.
func (a *App) Close() error {
	a.nav.Detach()
	if a.unwatch != nil {
		a.unwatch()
	}
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// ServeMetrics exposes the console's registry on addr until ctx ends.
func (a *App) ServeMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) loadPreferences(ctx context.Context) {
	if a.prefs == nil {
		return
	}
	p, err := a.prefs.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not load preferences", "error", err)
		return
	}
	a.setQuery(p.Query())
}

func (a *App) savePreferences(ctx context.Context) {
	if a.prefs == nil {
		return
	}
	q := a.currentQuery()
	p := services.Preferences{PageLimit: q.Limit, Sort: q.Sort}
	if err := a.prefs.Save(ctx, p); err != nil {
		a.log.Warn(ctx, "could not save preferences", "error", err)
	}
}

func (a *App) lastUsername(ctx context.Context) string {
	if a.prefs == nil {
		return ""
	}
	p, err := a.prefs.Load(ctx)
	if err != nil {
		return ""
	}
	return p.LastUsername
}

func (a *App) currentQuery() models.ListQuery {
	a.queryMu.Lock()
	defer a.queryMu.Unlock()
	return a.query
}

func (a *App) setQuery(q models.ListQuery) {
	a.queryMu.Lock()
	defer a.queryMu.Unlock()
	a.query = q.Normalize()
}

// status is shown in the prompt: "operator@/dashboard" or "/login".
func (a *App) status() string {
	cur := string(a.nav.Current())
	if id := a.auth.Identity(); !id.IsZero() {
		return id.Username + "@" + cur
	}
	return cur
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// Package cli implements the interactive stylist client: an auth screen, the
// three-tab app view (closet, outfits, profile) and the user-initiated flows
// (upload, discover/outfit view, rename). All terminal output is plain text;
// every network call goes through the API gateway.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dkozlov/stylist/internal/client/api"
	"github.com/dkozlov/stylist/internal/client/config"
	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/client/reqguard"
	"github.com/dkozlov/stylist/internal/client/services"
	"github.com/dkozlov/stylist/internal/client/session"
	"github.com/dkozlov/stylist/internal/logging"
)

// Tab identifies one of the app view's screens.
type Tab string

const (
	TabCloset  Tab = "closet"
	TabOutfits Tab = "outfits"
	TabProfile Tab = "profile"
)

// DressRenderPolicy selects how a dress slot is displayed (see render.go).
type DressRenderPolicy string

const (
	// DressCombined places the dress into both the top and bottom display
	// regions (and as its own card), matching the original layout.
	DressCombined DressRenderPolicy = config.DressRenderCombined
	// DressSeparate renders the dress only as its own card.
	DressSeparate DressRenderPolicy = config.DressRenderSeparate
)

// App holds the whole client state: services, the session store, and the
// view/outfit state the browser app kept in globals. Ownership is explicit:
// the session store owns identity and credentials, the app owns the
// transient outfit and view state.
type App struct {
	config *config.Config
	log    logging.Logger

	store   *session.Store
	auth    services.AuthService
	closet  services.ClosetService
	outfits services.OutfitService
	info    services.InfoService

	reader *bufio.Reader
	out    io.Writer

	loggedIn     bool
	tab          Tab
	closetFilter string

	currentOutfit  models.Outfit
	currentFilters models.GenerateFilters
	outfitViewOpen bool
	savedOutfits   []models.SavedOutfit

	weather      *models.Weather
	seasonColors []string

	dressRender DressRenderPolicy

	closetGuard   reqguard.Guard
	generateGuard reqguard.Guard
}

// NewApp wires the gateway, session store and services from the config.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	gw := api.New(c.ServerEndpointAddr, c.RequestTimeout, store, log)

	app := &App{
		config:      c,
		log:         log,
		store:       store,
		auth:        services.NewAuthService(gw, store),
		closet:      services.NewClosetService(gw),
		outfits:     services.NewOutfitService(gw),
		info:        services.NewInfoService(gw),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		tab:         TabCloset,
		dressRender: DressRenderPolicy(c.DressRender),
	}
	gw.SetOnSessionExpired(app.handleSessionExpired)

	return app, nil
}

// Run loads the persisted session, shows the matching screen and enters the
// command loop.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	_, ok, err := a.store.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "loading persisted session", "error", err)
	}
	if ok {
		// Token validity is not checked here; the first 401 logs us out.
		a.showApp(ctx)
	} else {
		a.showAuth()
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// status is the prompt suffix: the username and active tab when logged in.
func (a *App) status() string {
	if !a.loggedIn {
		return ""
	}
	sess, ok := a.store.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.User.Username, a.tab)
}

// showAuth switches to the unauthenticated screen.
func (a *App) showAuth() {
	a.loggedIn = false
	a.outfitViewOpen = false
	fmt.Fprintln(a.out, "Please log in or sign up. ('login', 'signup')")
}

// showApp enters the authenticated view: header strip, then the closet tab.
func (a *App) showApp(ctx context.Context) {
	a.loggedIn = true
	a.loadHeaderStrip(ctx)
	a.switchTab(ctx, TabCloset)
}

// handleSessionExpired is the gateway's 401 hook: by the time it runs the
// store has been cleared; the view switches back to auth.
func (a *App) handleSessionExpired() {
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
	a.showAuth()
}

// alertf is the CLI analog of the browser's blocking alert.
func (a *App) alertf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// loadHeaderStrip fetches weather and season colors. Best effort: failures
// are logged and never block the app.
func (a *App) loadHeaderStrip(ctx context.Context) {
	if w, err := a.info.Weather(ctx); err != nil {
		a.log.Error(ctx, "loading weather", "error", err)
	} else {
		a.weather = &w
	}

	if colors, err := a.info.SeasonColors(ctx); err != nil {
		a.log.Error(ctx, "loading season colors", "error", err)
	} else {
		a.seasonColors = colors
	}
}

// switchTab activates exactly one tab and runs its on-enter load: closet and
// outfits fetch from the server, profile renders from memory only.
func (a *App) switchTab(ctx context.Context, tab Tab) {
	a.tab = tab
	a.renderTabs()

	switch tab {
	case TabCloset:
		a.renderHeaderStrip()
		a.loadCloset(ctx, a.closetFilter)
	case TabOutfits:
		a.loadOutfits(ctx)
	case TabProfile:
		a.renderProfile()
	}
}

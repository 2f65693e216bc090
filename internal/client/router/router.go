package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/blogcli/internal/logging"
	"github.com/gorilla/mux"
)

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrNoHistory        = errors.New("no history entry")
	ErrTooManyRedirects = errors.New("too many guard redirects")
)

// maxRedirects bounds chains of guard redirects.
const maxRedirects = 4

// LoginState is what the guard reads on every transition.
type LoginState interface {
	IsLoggedIn() bool
}

// Router keeps the current location and a back/forward history.
type Router struct {
	mu      sync.Mutex
	mux     *mux.Router
	routes  map[string]Route
	state   LoginState
	history []Location
	pos     int
	log     logging.Logger
}

// New builds a router over routes and places it on the home page.
func New(state LoginState, routes []Route, log logging.Logger) (*Router, error) {
	if state == nil {
		return nil, errors.New("router: login state is required")
	}
	if log == nil {
		log = logging.Nop()
	}
	r := &Router{
		mux:    mux.NewRouter(),
		routes: make(map[string]Route, len(routes)),
		state:  state,
		log:    log,
	}
	for _, rt := range routes {
		if _, dup := r.routes[rt.Name]; dup {
			return nil, fmt.Errorf("router: duplicate route name %q", rt.Name)
		}
		r.mux.Path(rt.Path).Name(rt.Name)
		r.routes[rt.Name] = rt
	}

	home, err := r.resolveGuarded(HomePath)
	if err != nil {
		return nil, err
	}
	r.history = []Location{home}
	return r, nil
}

// Resolve matches raw (a path with an optional query) against the route
// table without navigating.
func (r *Router) Resolve(raw string) (Location, error) {
	if !isLocalPath(raw) {
		return Location{}, fmt.Errorf("%w: %q", ErrRouteNotFound, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q", ErrRouteNotFound, raw)
	}

	var m mux.RouteMatch
	if !r.mux.Match(&http.Request{Method: http.MethodGet, URL: u}, &m) || m.Route == nil {
		return Location{}, fmt.Errorf("%w: %q", ErrRouteNotFound, u.Path)
	}
	rt := r.routes[m.Route.GetName()]
	return Location{
		Name:   rt.Name,
		Path:   u.Path,
		Params: m.Vars,
		Query:  u.Query(),

		RawQuery: u.RawQuery,
		Access: rt.Access,
	}, nil
}

// PathFor builds the path of a named route from key/value pairs.
func (r *Router) PathFor(name string, pairs ...string) (string, error) {
	rt := r.mux.Get(name)
	if rt == nil {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}
	u, err := rt.URL(pairs...)
	if err != nil {
		return "", fmt.Errorf("build %s path: %w", name, err)
	}
	return u.Path, nil
}

// resolveGuarded resolves raw and follows guard redirects until a location
// is allowed.
func (r *Router) resolveGuarded(raw string) (Location, error) {
	loggedIn := r.state.IsLoggedIn()
	for i := 0; i <= maxRedirects; i++ {
		loc, err := r.Resolve(raw)
		if err != nil {
			return Location{}, err
		}
		d := Decide(loc, loggedIn)
		if d.Allowed() {
			return loc, nil
		}
		r.log.Debug(context.Background(), "guard redirect", "from", loc.FullPath(), "to", d.Redirect)
		raw = d.Redirect
	}
	return Location{}, ErrTooManyRedirects
}

// Push navigates to path and records a new history entry, dropping any
// forward entries.
func (r *Router) Push(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, err := r.resolveGuarded(path)
	if err != nil {
		return err
	}
	r.history = append(r.history[:r.pos+1], loc)
	r.pos++
	r.log.Debug(context.Background(), "navigate", "to", loc.FullPath())
	return nil
}

// Replace navigates to path in place of the current entry.
func (r *Router) Replace(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, err := r.resolveGuarded(path)
	if err != nil {
		return err
	}
	r.history[r.pos] = loc
	r.log.Debug(context.Background(), "replace", "to", loc.FullPath())
	return nil
}

// Back moves one entry back. The entry is re-checked by the guard and
// rewritten if the guard redirects.
func (r *Router) Back() error {
	return r.step(-1)
}

func (r *Router) Forward() error {
	return r.step(1)
}

func (r *Router) step(delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.pos + delta
	if next < 0 || next >= len(r.history) {
		return ErrNoHistory
	}
	loc, err := r.resolveGuarded(r.history[next].FullPath())
	if err != nil {
		return err
	}
	r.pos = next
	r.history[next] = loc
	return nil
}

// Current returns the location the user is on.
func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history[r.pos]
}

// RedirectTarget is where to go after a successful login: the redirect
// parameter of the current login location when it names a known route,
// the home page otherwise.
func (r *Router) RedirectTarget() string {
	cur := r.Current()
	if cur.Name != Login {
		return HomePath
	}
	target := cur.Query.Get(RedirectParam)
	if target == "" {
		return HomePath
	}
	if _, err := r.Resolve(target); err != nil {
		return HomePath
	}
	return target
}

package router

import (
	"net/url"
	"strings"
)

// Access is the guard tag of a route.
type Access int

const (
	Public Access = iota
	RequiresAuth
	GuestOnly
)

func (a Access) String() string {
	switch a {
	case RequiresAuth:
		return "requires-auth"
	case GuestOnly:
		return "guest-only"
	default:
		return "public"
	}
}

// Route names.
const (
	Home          = "Home"
	ArticleDetail = "ArticleDetail"
	ArticleCreate = "ArticleCreate"
	Login         = "Login"
	Register      = "Register"
	CategoryList  = "CategoryList"
	TagList       = "TagList"
)

const (
	HomePath  = "/"
	LoginPath = "/login"

	// RedirectParam carries the originally requested path on the login page.
	RedirectParam = "redirect"
)

type Route struct {
	Name   string
	Path   string
	Access Access
}

// DefaultRoutes is the route table of the client. Order matters: the first
// matching route wins, so /article/new is listed before /article/{id}.
func DefaultRoutes() []Route {
	return []Route{
		{Name: Home, Path: HomePath, Access: Public},
		{Name: ArticleCreate, Path: "/article/new", Access: RequiresAuth},
		{Name: ArticleDetail, Path: "/article/{id}", Access: Public},
		{Name: Login, Path: LoginPath, Access: GuestOnly},
		{Name: Register, Path: "/register", Access: GuestOnly},
		{Name: CategoryList, Path: "/categories", Access: Public},
		{Name: TagList, Path: "/tags", Access: Public},
	}
}

// Location is a resolved navigation target.
type Location struct {
	Name   string
	Path   string
	Params map[string]string
	Query  url.Values
	Access Access

	// RawQuery is the query as typed, in its original key order.
	RawQuery string
}

// FullPath is the path plus its query string. The raw query is preferred
// so parameter order survives a round trip.
func (l Location) FullPath() string {
	if l.RawQuery != "" {
		return l.Path + "?" + l.RawQuery
	}
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + l.Query.Encode()
}

// Decision is the guard's verdict. An empty Redirect means the transition
// is allowed.
type Decision struct {
	Redirect string
}

func (d Decision) Allowed() bool { return d.Redirect == "" }

// Decide applies the guard rules to target, first match wins:
// a RequiresAuth route without a session goes to the login page carrying
// the target in the redirect parameter, a GuestOnly route with a session
// goes home, and everything else is allowed.
func Decide(target Location, loggedIn bool) Decision {
	switch {
	case target.Access == RequiresAuth && !loggedIn:
		q := url.Values{RedirectParam: []string{target.FullPath()}}
		return Decision{Redirect: LoginPath + "?" + q.Encode()}
	case target.Access == GuestOnly && loggedIn:
		return Decision{Redirect: HomePath}
	default:
		return Decision{}
	}
}

// isLocalPath reports whether p is an in-app absolute path.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}

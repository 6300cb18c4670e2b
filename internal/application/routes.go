package application

// Route is an abstract navigable view, not a literal URL path.
type Route string

const (
	RouteRoot   Route = "/"
	RouteLogin  Route = "login"
	RouteSignup Route = "signup"
	RouteStudy  Route = "study"
)

// ResolveRoute maps a requested view to the one actually reachable given
// the authentication state. Unauthenticated users land on login for
// every protected or unknown view; authenticated users are pushed off
// the auth views onto study.
func ResolveRoute(requested Route, authenticated bool) Route {
	switch requested {
	case RouteLogin, RouteSignup:
		if authenticated {
			return RouteStudy
		}
		return requested
	case RouteStudy:
		if authenticated {
			return RouteStudy
		}
		return RouteLogin
	default:
		if authenticated {
			return RouteStudy
		}
		return RouteLogin
	}
}

// Guard re-evaluates the session on every resolution, so clearing the
// credential redirects away from protected views on the next attempt.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

func (g *Guard) Resolve(requested Route) Route {
	return ResolveRoute(requested, g.session.IsAuthenticated())
}

package auth

// Admin area routes the guard decides over.
const (
	LoginRoute     = "/admin/login"
	AdminHomeRoute = "/admin"
)

// Decision is the guard's verdict for a (session state, route) pair.
type Decision int

const (
	// ShowLoading holds rendering until the session state settles.
	ShowLoading Decision = iota
	// RenderLogin renders the login page.
	RenderLogin
	// Render renders the requested admin route.
	Render
	// RedirectToLogin sends the visitor to the login page.
	RedirectToLogin
	// RedirectToAdminHome sends a signed-in admin away from the login page.
	RedirectToAdminHome
)

// Decide is the admin route guard: a pure function of session state and the
// requested route, re-evaluated whenever either changes. Authenticated
// non-admins are treated exactly like unauthenticated visitors, so admin
// home never redirects to itself.
func Decide(state State, route string) Decision {
	if state.Phase == PhaseLoading {
		return ShowLoading
	}
	if route == LoginRoute {
		if state.IsAdmin() {
			return RedirectToAdminHome
		}
		return RenderLogin
	}
	if !state.IsAdmin() {
		return RedirectToLogin
	}
	return Render
}

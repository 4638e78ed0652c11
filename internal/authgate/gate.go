// Package authgate decides whether the current visitor may see a page and
// where to send them otherwise. The decision is a pure function of the
// session state and the page's policy: evaluating it twice with the same
// inputs yields the same answer, and a page that is the target of a
// redirect never redirects back, so no redirect loops are possible.
package authgate

import "github.com/scrapegenie/storefront/internal/marketplace"

// Kind classifies a gate decision.
type Kind int

const (
	// Allow renders the page normally.
	Allow Kind = iota
	// Pending renders a loading placeholder; no redirect decision is made
	// while session resolution is still in flight.
	Pending
	// Redirect sends the visitor to Decision.Target.
	Redirect
)

// Decision is the outcome of evaluating a gate against the session state.
type Decision struct {
	Kind   Kind
	Target string
}

func allow() Decision { return Decision{Kind: Allow} }

func pending() Decision { return Decision{Kind: Pending} }

func redirect(to string) Decision { return Decision{Kind: Redirect, Target: to} }

// Gate is one page's access policy.
//
// The redirect targets are intentionally per-page data rather than a global
// rule: admin pages send a mismatched role to the storefront home, while
// the generic profile page sends sellers and admins to their own
// dashboards. Keeping the asymmetry explicit here documents it.
type Gate struct {
	// Required is the role the page demands. Empty means any identity
	// (or none) may view, subject to Mismatch routing below.
	Required marketplace.Role

	// GuestRedirect is where unauthenticated visitors are sent. Empty
	// means guests may view the page; the page itself may show an
	// "authentication required" notice.
	GuestRedirect string

	// Mismatch maps a present-but-unfitting role to its canonical home.
	Mismatch map[marketplace.Role]string

	// MismatchDefault is the fallback target for roles not listed in
	// Mismatch when Required is set.
	MismatchDefault string
}

// Decide evaluates the gate. It is re-run whenever the session's loading
// flag or identity changes and is safe to run any number of times.
func (g Gate) Decide(loading bool, identity *marketplace.Identity) Decision {
	if loading {
		return pending()
	}

	if identity == nil {
		if g.GuestRedirect != "" {
			return redirect(g.GuestRedirect)
		}
		return allow()
	}

	if target, ok := g.Mismatch[identity.Role]; ok {
		return redirect(target)
	}

	if g.Required != "" && identity.Role != g.Required {
		if g.MismatchDefault != "" {
			return redirect(g.MismatchDefault)
		}
		return redirect("/")
	}

	return allow()
}

// Canonical page policies.

const (
	SignInPath          = "/sign-in"
	HomePath            = "/"
	ProfilePath         = "/profile"
	SellerDashboardPath = "/seller-dashboard"
	AdminDashboardPath  = "/admin-dashboard"
)

// AdminDashboard gates admin-only pages: guests go to sign-in, any
// non-admin identity goes back to the storefront home.
func AdminDashboard() Gate {
	return Gate{
		Required:        marketplace.RoleAdmin,
		GuestRedirect:   SignInPath,
		MismatchDefault: HomePath,
	}
}

// SellerDashboard gates seller-only pages with the same policy shape as
// admin pages.
func SellerDashboard() Gate {
	return Gate{
		Required:        marketplace.RoleSeller,
		GuestRedirect:   SignInPath,
		MismatchDefault: HomePath,
	}
}

// Profile gates the generic account page. Guests may view it (the page
// shows an authentication notice instead of forcing a redirect away);
// sellers and admins are routed to their role-specific dashboards.
func Profile() Gate {
	return Gate{
		Mismatch: map[marketplace.Role]string{
			marketplace.RoleSeller: SellerDashboardPath,
			marketplace.RoleAdmin:  AdminDashboardPath,
		},
	}
}

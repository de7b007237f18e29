package auth

import "alumni-portal/internal/domain/user"

type Page string

const (
	PageDashboard  Page = "dashboard"
	PageAlumni     Page = "alumni"
	PageAnalytics  Page = "analytics"
	PageCommunity  Page = "community"
	PageMessages   Page = "messages"
	PageNewsletter Page = "newsletter"
	PageProfile    Page = "profile"
)

// pagePolicy is the fixed role-to-page visibility table. Dashboard,
// analytics and newsletter are admin-only; the alumni directory is hidden
// from alumni themselves but offered to students as mentor discovery.
var pagePolicy = map[user.Role][]Page{
	user.RoleAdmin: {
		PageDashboard, PageAlumni, PageAnalytics, PageCommunity,
		PageMessages, PageNewsletter, PageProfile,
	},
	user.RoleAlumnus: {
		PageCommunity, PageMessages, PageProfile,
	},
	user.RoleStudent: {
		PageAlumni, PageCommunity, PageMessages, PageProfile,
	},
}

func AllowedPages(role user.Role) []Page {
	pages := pagePolicy[role]
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

func CanAccess(role user.Role, page Page) bool {
	for _, p := range pagePolicy[role] {
		if p == page {
			return true
		}
	}
	return false
}

// LandingPage is where a fresh session starts.
func LandingPage(role user.Role) Page {
	switch role {
	case user.RoleAdmin:
		return PageDashboard
	default:
		return PageCommunity
	}
}

// ResolvePage redirects a disallowed page to the role's landing page instead
// of erroring.
func ResolvePage(role user.Role, page Page) Page {
	if CanAccess(role, page) {
		return page
	}
	return LandingPage(role)
}

// PageLabel returns the navigation label, which differs per role for the
// alumni directory.
func PageLabel(role user.Role, page Page) string {
	if page == PageAlumni && role == user.RoleStudent {
		return "Find a Mentor"
	}
	switch page {
	case PageDashboard:
		return "Dashboard"
	case PageAlumni:
		return "Alumni Records"
	case PageAnalytics:
		return "Analytics"
	case PageCommunity:
		return "Community"
	case PageMessages:
		return "Messages"
	case PageNewsletter:
		return "Newsletter"
	case PageProfile:
		return "My Profile"
	}
	return string(page)
}

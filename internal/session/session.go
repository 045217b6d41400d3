// Package session carries the per-run user context: the active role
// and locale. It is built once from config and passed explicitly, so
// tests can run multiple configurations without touching any global.
package session

import "gastrogrid/internal/config"

// Role is the active user role driving which screens and affordances
// the presentation layer exposes.
type Role string

const (
	RoleCrew       Role = "crew"
	RoleDispatcher Role = "dispatcher"
	RoleDirector   Role = "director"
)

// ParseRole falls back to crew for unknown input.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleCrew, RoleDispatcher, RoleDirector:
		return Role(raw)
	default:
		return RoleCrew
	}
}

// Title returns the UI label for the role.
func (r Role) Title() string {
	switch r {
	case RoleDispatcher:
		return "Dispatcher"
	case RoleDirector:
		return "Director"
	default:
		return "Crew"
	}
}

// Session is the explicit app session object.
type Session struct {
	Role     Role
	Language string
}

// FromConfig builds the session from loaded configuration.
func FromConfig(cfg config.SessionConfig) Session {
	lang := cfg.Language
	if lang == "" {
		lang = "de"
	}
	return Session{Role: ParseRole(cfg.Role), Language: lang}
}

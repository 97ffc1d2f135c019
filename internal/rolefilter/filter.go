// Package rolefilter derives the navigation a dashboard user may see from their active role.
//
// The filter only decides what is shown. It is not an authorization layer and nothing in
// the API rejects a request based on it.
package rolefilter

import (
	"context"
	"sort"
	"strings"
	"sync"

	"clinic-dashboard/internal/domain"
	"clinic-dashboard/internal/pkg/constants"

	"github.com/rs/zerolog/log"
)

// RoleKey is the storage key holding the active role.
const RoleKey = "userRole"

// Storage is the key-value store the active role is persisted in.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Filter holds the active role of one session and the permission set derived from it.
type Filter struct {
	store Storage

	mu          sync.RWMutex
	role        constants.Role
	permissions map[string]struct{}
}

// New returns a Filter at DefaultRole. Call Initialize to load the stored role.
func New(store Storage) *Filter {
	return &Filter{
		store:       store,
		role:        constants.DefaultRole,
		permissions: constants.PermissionsFor(constants.DefaultRole),
	}
}

// Initialize reads the stored role. A missing or unrecognized value, or a failed read,
// leaves the filter at DefaultRole. Nothing is written back.
func (f *Filter) Initialize(ctx context.Context) {
	role := constants.DefaultRole
	if f.store != nil {
		stored, ok, err := f.store.Get(ctx, RoleKey)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("rolefilter: reading stored role failed, using default")
		case !ok:
		default:
			if r, valid := constants.ParseRole(stored); valid {
				role = r
			} else {
				log.Debug().Str("stored_role", stored).Msg("rolefilter: unrecognized stored role, using default")
			}
		}
	}
	f.set(role)
}

func (f *Filter) set(role constants.Role) {
	perms := constants.PermissionsFor(role)
	f.mu.Lock()
	f.role = role
	f.permissions = perms
	f.mu.Unlock()
}

// CurrentRole returns the active role.
func (f *Filter) CurrentRole() constants.Role {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.role
}

// Permissions returns the tokens of the active role, sorted.
func (f *Filter) Permissions() []string {
	f.mu.RLock()
	out := make([]string, 0, len(f.permissions))
	for p := range f.permissions {
		out = append(out, p)
	}
	f.mu.RUnlock()
	sort.Strings(out)
	return out
}

// AvailableRoles returns every role the filter can switch to, in switcher order.
func (f *Filter) AvailableRoles() []constants.Role {
	out := make([]constants.Role, len(constants.AvailableRoles))
	copy(out, constants.AvailableRoles)
	return out
}

// DisplayName returns the label for role, or role itself when it has none.
func (f *Filter) DisplayName(role string) string {
	return constants.DisplayName(role)
}

// Token converts a route path into a permission token: the leading "/" is dropped and
// any remaining separators become "-" ("/reports/quality" -> "reports-quality").
func Token(route string) string {
	return strings.ReplaceAll(strings.TrimPrefix(route, "/"), "/", "-")
}

// HasPermission reports whether route is visible under the active role.
func (f *Filter) HasPermission(route string) bool {
	tok := Token(route)
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.permissions[tok]
	return ok
}

// FilterNavigation returns the items visible under the active role. Groups are kept only
// when at least one child is visible, and then carry only their visible children.
// Order is preserved and items is not modified.
func (f *Filter) FilterNavigation(items []domain.NavItem) []domain.NavItem {
	f.mu.RLock()
	perms := f.permissions
	f.mu.RUnlock()
	allowed := func(path string) bool {
		_, ok := perms[Token(path)]
		return ok
	}

	out := make([]domain.NavItem, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case domain.Group:
			var children []domain.Leaf
			for _, c := range it.Children {
				if allowed(c.Path) {
					children = append(children, c)
				}
			}
			if len(children) == 0 {
				continue
			}
			out = append(out, domain.Group{Label: it.Label, Icon: it.Icon, Children: children})
		case domain.Leaf:
			if allowed(it.Path) {
				out = append(out, it)
			}
		}
	}
	return out
}

// ChangeRole switches the active role and persists it under RoleKey. Unknown roles are
// ignored. The in-memory switch happens before the write, so a storage error is returned
// with the new role already active.
func (f *Filter) ChangeRole(ctx context.Context, role constants.Role) error {
	if _, ok := constants.PermissionTable[role]; !ok {
		log.Debug().Str("role", string(role)).Msg("rolefilter: ignoring unknown role")
		return nil
	}
	f.set(role)
	if f.store == nil {
		return nil
	}
	return f.store.Set(ctx, RoleKey, string(role))
}

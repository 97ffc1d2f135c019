package navigation

import (
	"clinic-dashboard/internal/domain"
	"clinic-dashboard/internal/pkg/constants"
	"clinic-dashboard/internal/rolefilter"
)

// DefaultMenu returns the dashboard sidebar. A new slice is built on every call.
func DefaultMenu() []domain.NavItem {
	return []domain.NavItem{
		domain.Leaf{Path: "/dashboard", Label: "Panel Principal", Icon: "layout-dashboard"},
		domain.Leaf{Path: "/patient-safety-dashboard", Label: "Seguridad del Paciente", Icon: "shield-check"},
		domain.Group{Label: "Personal", Icon: "users", Children: []domain.Leaf{
			{Path: "/staffing", Label: "Dotación de Personal"},
			{Path: "/scheduling", Label: "Turnos"},
			{Path: "/training", Label: "Capacitación"},
		}},
		domain.Group{Label: "Calidad", Icon: "clipboard-check", Children: []domain.Leaf{
			{Path: "/quality-metrics", Label: "Indicadores de Calidad"},
			{Path: "/incident-reports", Label: "Reportes de Incidentes"},
			{Path: "/audits", Label: "Auditorías"},
		}},
		domain.Leaf{Path: "/patients", Label: "Pacientes", Icon: "bed"},
		domain.Leaf{Path: "/alerts", Label: "Alertas", Icon: "bell"},
		domain.Leaf{Path: "/reports", Label: "Reportes", Icon: "file-text"},
		domain.Group{Label: "Administración", Icon: "settings", Children: []domain.Leaf{
			{Path: "/settings", Label: "Configuración"},
			{Path: "/admin", Label: "Administración del Sistema"},
		}},
	}
}

// RoleOption is one entry of the role switcher.
type RoleOption struct {
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

// RoleView is what the role switcher renders.
type RoleView struct {
	Current        string       `json:"current"`
	DisplayName    string       `json:"displayName"`
	AvailableRoles []RoleOption `json:"availableRoles"`
}

// PermissionView lists the tokens of the active role.
type PermissionView struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// CheckResult answers a single route query.
type CheckResult struct {
	Route   string `json:"route"`
	Token   string `json:"token"`
	Allowed bool   `json:"allowed"`
}

// Roles builds the role switcher view for f.
func Roles(f *rolefilter.Filter) RoleView {
	current := f.CurrentRole()
	available := f.AvailableRoles()
	opts := make([]RoleOption, 0, len(available))
	for _, r := range available {
		opts = append(opts, RoleOption{Role: string(r), DisplayName: f.DisplayName(string(r))})
	}
	return RoleView{
		Current:        string(current),
		DisplayName:    f.DisplayName(string(current)),
		AvailableRoles: opts,
	}
}

// Permissions builds the permission view for f.
func Permissions(f *rolefilter.Filter) PermissionView {
	return PermissionView{Role: string(f.CurrentRole()), Permissions: f.Permissions()}
}

// Check answers whether route is visible under f.
func Check(f *rolefilter.Filter, route string) CheckResult {
	return CheckResult{Route: route, Token: rolefilter.Token(route), Allowed: f.HasPermission(route)}
}

// Menu returns DefaultMenu filtered for f.
func Menu(f *rolefilter.Filter) []domain.NavItem {
	return f.FilterNavigation(DefaultMenu())
}

// Unreachable returns the permission tokens of role that no DefaultMenu entry points to.
// An empty result means every permission of the role has a sidebar entry.
func Unreachable(role constants.Role) []string {
	linked := map[string]bool{}
	for _, item := range DefaultMenu() {
		switch it := item.(type) {
		case domain.Leaf:
			linked[rolefilter.Token(it.Path)] = true
		case domain.Group:
			for _, c := range it.Children {
				linked[rolefilter.Token(c.Path)] = true
			}
		}
	}
	var out []string
	for _, tok := range constants.PermissionTable[role] {
		if !linked[tok] {
			out = append(out, tok)
		}
	}
	return out
}

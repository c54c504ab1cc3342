package http

import "strings"

// Rutas de la consola.
const (
	RouteLogin        = "/login"
	RouteLogout       = "/logout"
	RouteDashboard    = "/dashboard"
	RouteEstoque      = "/estoque"
	RouteMovimentacao = "/movimentacao"
	RouteRelatorios   = "/relatorios"
	RouteVendas       = "/vendas"
)

// ProtectedRoutes exigen sesión; sus subrutas también.
var ProtectedRoutes = []string{RouteDashboard, RouteEstoque, RouteMovimentacao, RouteRelatorios, RouteVendas}

// PublicRoutes solo para visitantes sin sesión.
var PublicRoutes = []string{RouteLogin}

// IsProtectedRoute indica si path es una ruta protegida o una subruta de ella,
// sin distinguir mayúsculas.
func IsProtectedRoute(path string) bool { return matchesAny(path, ProtectedRoutes) }

// IsPublicRoute indica si path es una ruta pública.
func IsPublicRoute(path string) bool { return matchesAny(path, PublicRoutes) }

// DefaultRoute destino de "/" y de cualquier ruta desconocida.
func DefaultRoute(authenticated bool) string {
	if authenticated {
		return RouteDashboard
	}
	return RouteLogin
}

func matchesAny(path string, routes []string) bool {
	path = strings.ToLower(strings.TrimSuffix(path, "/"))
	for _, r := range routes {
		if path == r || strings.HasPrefix(path, r+"/") {
			return true
		}
	}
	return false
}

// Package routepath centralizes web route constants.
package routepath

const (
	Root         = "/"
	Public       = "/public"
	Login        = "/login"
	Logout       = "/logout"
	AccessDenied = "/access-denied"
	Dashboard    = "/dashboard"
	Profile      = "/profile"

	Todos        = "/todos"
	TodosAll     = "/todos/all"
	TodoToggle   = "/todos/{id}/toggle"
	TodoDelete   = "/todos/{id}/delete"
	TodoResource = "/todos/{id}"

	Admin         = "/admin"
	AdminUserTier = "/admin/users/{id}/tier"

	StaticPrefix = "/static/"
	Favicon      = "/favicon.ico"
)

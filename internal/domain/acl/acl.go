// Package acl resuelve de forma determinista qué puede hacer cada rol.
//
// Todo aquí es puro: sin I/O, sin estado global y sin errores. La ausencia de
// un rol, recurso o acción válidos resuelve siempre a la respuesta más
// restrictiva (deny). Esa política de "fail closed" es un invariante duro.
package acl

// Role es el rol de un usuario. Enumeración cerrada; los valores desconocidos
// se tratan explícitamente en GetPermissions.
type Role string

// Roles válidos.
const (
	RoleAdmin  Role = "admin"
	RoleBroker Role = "broker"
	RoleUser   Role = "user"
)

// ParseRole valida un rol almacenado como string. Devuelve false para valores
// fuera de la enumeración (incluido el string vacío).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleBroker, RoleUser:
		return Role(s), true
	}
	return "", false
}

// PermissionSet capacidades booleanas derivadas del rol. Nunca se persiste:
// se recalcula en cada consulta.
type PermissionSet struct {
	CanCreate       bool
	CanRead         bool
	CanUpdate       bool
	CanDelete       bool
	CanManageUsers  bool
	CanViewReports  bool
	CanGeneratePDFs bool
}

// GetPermissions deriva el PermissionSet de un rol.
//
// Rol vacío (sin autenticar) → todo en false. Un rol fuera de la enumeración
// cae al conjunto de "user", el más restrictivo entre los autenticados; ese
// fallback es deliberado y está cubierto por tests, no es un accidente del
// default del switch.
func GetPermissions(role Role) PermissionSet {
	if role == "" {
		return PermissionSet{}
	}

	switch role {
	case RoleAdmin:
		return PermissionSet{
			CanCreate:       true,
			CanRead:         true,
			CanUpdate:       true,
			CanDelete:       true,
			CanManageUsers:  true,
			CanViewReports:  true,
			CanGeneratePDFs: true,
		}
	case RoleBroker:
		return PermissionSet{
			CanCreate:       true,
			CanRead:         true,
			CanUpdate:       true,
			CanDelete:       true,
			CanManageUsers:  false, // los brokers no gestionan usuarios
			CanViewReports:  true,
			CanGeneratePDFs: true,
		}
	case RoleUser:
		fallthrough
	default:
		// Rol desconocido → permisos de "user" (solo lectura).
		return PermissionSet{
			CanCreate:       false,
			CanRead:         true,
			CanUpdate:       false,
			CanDelete:       false,
			CanManageUsers:  false,
			CanViewReports:  true,
			CanGeneratePDFs: true,
		}
	}
}

// CanAccessResource decide si un rol puede ejecutar una acción sobre un
// recurso. Los pares especiales (users/create, reports/view, pdf/generate)
// tienen prioridad sobre el mapeo CRUD general; una acción no reconocida
// deniega siempre.
func CanAccessResource(role Role, resource, action string) bool {
	perms := GetPermissions(role)

	// Casos especiales por recurso.
	if resource == "users" && action == "create" {
		return perms.CanManageUsers
	}
	if resource == "reports" && action == "view" {
		return perms.CanViewReports
	}
	if resource == "pdf" && action == "generate" {
		return perms.CanGeneratePDFs
	}

	// Mapeo CRUD general.
	switch action {
	case "create":
		return perms.CanCreate
	case "read", "view":
		return perms.CanRead
	case "update", "edit":
		return perms.CanUpdate
	case "delete":
		return perms.CanDelete
	default:
		return false
	}
}

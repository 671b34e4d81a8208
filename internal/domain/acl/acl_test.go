package acl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/everflown/logistics-api/internal/domain/acl"
)

// ──────────────────────────────────────────────────────────────────────────────
// GetPermissions — tabla exhaustiva por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPermissions_Admin_TodoPermitido(t *testing.T) {
	p := acl.GetPermissions(acl.RoleAdmin)

	assert.True(t, p.CanCreate)
	assert.True(t, p.CanRead)
	assert.True(t, p.CanUpdate)
	assert.True(t, p.CanDelete)
	assert.True(t, p.CanManageUsers, "solo admin gestiona usuarios")
	assert.True(t, p.CanViewReports)
	assert.True(t, p.CanGeneratePDFs)
}

func TestGetPermissions_Broker_TodoMenosUsuarios(t *testing.T) {
	p := acl.GetPermissions(acl.RoleBroker)

	assert.True(t, p.CanCreate)
	assert.True(t, p.CanRead)
	assert.True(t, p.CanUpdate)
	assert.True(t, p.CanDelete)
	assert.False(t, p.CanManageUsers, "broker no gestiona usuarios")
	assert.True(t, p.CanViewReports)
	assert.True(t, p.CanGeneratePDFs)
}

func TestGetPermissions_User_SoloLectura(t *testing.T) {
	p := acl.GetPermissions(acl.RoleUser)

	assert.False(t, p.CanCreate)
	assert.True(t, p.CanRead)
	assert.False(t, p.CanUpdate)
	assert.False(t, p.CanDelete)
	assert.False(t, p.CanManageUsers)
	assert.True(t, p.CanViewReports)
	assert.True(t, p.CanGeneratePDFs, "user puede ver/descargar PDFs")
}

// Rol desconocido cae al conjunto de "user": fallback explícito, no un
// accidente del switch.
func TestGetPermissions_RolDesconocido_FallbackAUser(t *testing.T) {
	p := acl.GetPermissions(acl.Role("superadmin"))

	assert.Equal(t, acl.GetPermissions(acl.RoleUser), p,
		"rol desconocido debe recibir exactamente los permisos de user")
}

// Rol vacío (sin autenticar) → todo denegado.
func TestGetPermissions_SinRol_TodoDenegado(t *testing.T) {
	assert.Equal(t, acl.PermissionSet{}, acl.GetPermissions(""),
		"sin rol no hay ningún permiso")
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "broker", "user"} {
		r, ok := acl.ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, acl.Role(s), r)
	}
	for _, s := range []string{"", "superadmin", "Admin", "BROKER"} {
		_, ok := acl.ParseRole(s)
		assert.False(t, ok, "%q no es un rol válido", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessResource — casos especiales y mapeo CRUD general
// ──────────────────────────────────────────────────────────────────────────────

// users/create responde exactamente a CanManageUsers para todos los roles.
func TestCanAccessResource_UsersCreate_EsManageUsers(t *testing.T) {
	roles := []acl.Role{acl.RoleAdmin, acl.RoleBroker, acl.RoleUser, acl.Role("otro"), ""}
	for _, r := range roles {
		assert.Equal(t,
			acl.GetPermissions(r).CanManageUsers,
			acl.CanAccessResource(r, "users", "create"),
			"rol %q: users/create debe equivaler a CanManageUsers", r)
	}
}

func TestCanAccessResource_CasosEspeciales(t *testing.T) {
	// reports/view → CanViewReports (user sí puede, pese a no tener create).
	assert.True(t, acl.CanAccessResource(acl.RoleUser, "reports", "view"))
	// pdf/generate → CanGeneratePDFs.
	assert.True(t, acl.CanAccessResource(acl.RoleUser, "pdf", "generate"))
	assert.False(t, acl.CanAccessResource("", "pdf", "generate"),
		"sin autenticar no se generan PDFs")
}

func TestCanAccessResource_MapeoCRUDGeneral(t *testing.T) {
	// view y edit son sinónimos de read y update.
	assert.True(t, acl.CanAccessResource(acl.RoleUser, "orders", "view"))
	assert.False(t, acl.CanAccessResource(acl.RoleUser, "orders", "edit"))
	assert.True(t, acl.CanAccessResource(acl.RoleBroker, "orders", "edit"))
	assert.True(t, acl.CanAccessResource(acl.RoleBroker, "leads", "create"))
	assert.False(t, acl.CanAccessResource(acl.RoleUser, "leads", "create"))
}

// Acción no reconocida → deny, sin importar el rol (fail closed).
func TestCanAccessResource_AccionDesconocida_Deniega(t *testing.T) {
	assert.False(t, acl.CanAccessResource(acl.RoleAdmin, "orders", "approve"))
	assert.False(t, acl.CanAccessResource(acl.RoleAdmin, "orders", ""))
}

// Escenario end-to-end de roles sobre recursos concretos.
func TestCanAccessResource_EscenarioRoles(t *testing.T) {
	// user no borra órdenes; broker sí.
	assert.False(t, acl.CanAccessResource(acl.RoleUser, "orders", "delete"))
	assert.True(t, acl.CanAccessResource(acl.RoleBroker, "orders", "delete"))

	// admin crea usuarios; broker no, pese a su permiso general de create.
	assert.True(t, acl.CanAccessResource(acl.RoleAdmin, "users", "create"))
	assert.False(t, acl.CanAccessResource(acl.RoleBroker, "users", "create"))
}

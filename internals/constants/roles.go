package constants

import "fmt"

// Role MBG (closed set). Jangan pakai string lepas di handler,
// selalu lewat konstanta ini.
const (
	RoleMasterAdmin = "MASTERADMIN"
	RoleAdmin       = "ADMIN"
	RoleSiswa       = "SISWA"
	RoleSekolah     = "SEKOLAH"
	RoleKatering    = "KATERING"
	RoleDinkes      = "DINKES"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySiswaCanAccess  = "❌ Hanya siswa yang boleh mengakses fitur %s."
	ErrOnlyRolesCanAccess  = "❌ Role Anda tidak boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSiswa(feature string) string {
	return fmt.Sprintf(ErrOnlySiswaCanAccess, feature)
}

func RoleError(feature string) string {
	return fmt.Sprintf(ErrOnlyRolesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMasterAdmin,
		RoleAdmin,
		RoleSiswa,
		RoleSekolah,
		RoleKatering,
		RoleDinkes,
	}

	// Role yang boleh dibuat lewat /users (bukan self-service)
	AssignableRoles = []string{
		RoleAdmin,
		RoleSiswa,
		RoleSekolah,
		RoleKatering,
		RoleDinkes,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleMasterAdmin,
	}

	MasterAdminOnly = []string{
		RoleMasterAdmin,
	}

	SiswaOnly = []string{
		RoleSiswa,
	}

	SekolahOnly = []string{
		RoleSekolah,
	}

	KateringOnly = []string{
		RoleKatering,
	}

	AdminAndDinkes = []string{
		RoleAdmin,
		RoleDinkes,
		RoleMasterAdmin,
	}
)

// IsValidRole true kalau role termasuk closed set MBG.
func IsValidRole(role string) bool {
	switch role {
	case RoleMasterAdmin, RoleAdmin, RoleSiswa, RoleSekolah, RoleKatering, RoleDinkes:
		return true
	}
	return false
}

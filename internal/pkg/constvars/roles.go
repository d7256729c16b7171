package constvars

// User roles, mirrored in session data and survey access filters.
const (
	RoleAdmin    = "ADMIN"
	RoleSurveyor = "SURVEYOR"
	RoleVerifier = "VERIFIER"
	RoleViewer   = "VIEWER"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSurveyor, RoleVerifier, RoleViewer:
		return true
	}
	return false
}

package constants

// Role identifies a category of dashboard user. The set is closed; values coming from
// outside the process (cookies, stored preferences, request bodies) go through ParseRole.
type Role string

const (
	ChiefNursingOfficer     Role = "chief_nursing_officer"
	NurseManager            Role = "nurse_manager"
	QualityAssuranceManager Role = "quality_assurance_manager"
	ClinicalSupervisor      Role = "clinical_supervisor"
	StaffNurse              Role = "staff_nurse"
)

// DefaultRole is used when no stored role exists or the stored value is not recognized.
const DefaultRole = NurseManager

// AvailableRoles is the ordered domain of PermissionTable (role switcher order).
var AvailableRoles = []Role{
	ChiefNursingOfficer,
	NurseManager,
	QualityAssuranceManager,
	ClinicalSupervisor,
	StaffNurse,
}

// roleDisplayNames are the labels shown in the role switcher.
var roleDisplayNames = map[Role]string{
	ChiefNursingOfficer:     "Directora de Enfermería",
	NurseManager:            "Gerente de Enfermería",
	QualityAssuranceManager: "Gerente de Aseguramiento de Calidad",
	ClinicalSupervisor:      "Supervisor Clínico",
	StaffNurse:              "Enfermero(a) de Planta",
}

// ParseRole returns the Role for s and true when s is a key of PermissionTable.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if _, ok := PermissionTable[r]; !ok {
		return "", false
	}
	return r, true
}

// DisplayName returns the human-readable label for role, or role itself if it has none.
func DisplayName(role string) string {
	if name, ok := roleDisplayNames[Role(role)]; ok {
		return name
	}
	return role
}

func (r Role) String() string { return string(r) }

package constants

// Permission tokens. A token is a route path with its separators removed
// ("/patient-safety-dashboard" -> "patient-safety-dashboard").
const (
	Dashboard              = "dashboard"
	PatientSafetyDashboard = "patient-safety-dashboard"
	Staffing               = "staffing"
	Scheduling             = "scheduling"
	QualityMetrics         = "quality-metrics"
	IncidentReports        = "incident-reports"
	Audits                 = "audits"
	Patients               = "patients"
	Alerts                 = "alerts"
	Training               = "training"
	Reports                = "reports"
	Settings               = "settings"
	Admin                  = "admin"
)

// PermissionTable maps every Role to the navigation tokens it may see.
// It is defined once and never mutated; callers that need a mutable copy use PermissionsFor.
var PermissionTable = map[Role][]string{
	ChiefNursingOfficer: {
		Dashboard, PatientSafetyDashboard, Staffing, Scheduling, QualityMetrics, IncidentReports,
		Audits, Patients, Alerts, Training, Reports, Settings, Admin,
	},
	NurseManager: {
		Dashboard, PatientSafetyDashboard, Staffing, Scheduling, QualityMetrics, IncidentReports,
		Patients, Alerts, Training, Reports, Settings,
	},
	QualityAssuranceManager: {
		Dashboard, PatientSafetyDashboard, QualityMetrics, IncidentReports, Audits, Alerts, Reports,
	},
	ClinicalSupervisor: {
		Dashboard, PatientSafetyDashboard, Staffing, IncidentReports, Patients, Alerts, Training,
	},
	StaffNurse: {
		Dashboard, PatientSafetyDashboard, Patients, Alerts, Training,
	},
}

// PermissionsFor returns the permission set for role. Unknown roles get an empty set.
func PermissionsFor(role Role) map[string]struct{} {
	tokens := PermissionTable[role]
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

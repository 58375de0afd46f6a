package dto

// StatsResponse feeds the dashboard counters.
type StatsResponse struct {
	Patients      int64            `json:"patients"`
	Practitioners int64            `json:"practitioners"`
	Appointments  int64            `json:"appointments"`
	ByStatus      map[string]int64 `json:"appointments_by_status"`
	Consultations int64            `json:"consultations"`
	Prescriptions int64            `json:"prescriptions"`
	Exams         int64            `json:"exams"`
	Users         int64            `json:"users"`
	PendingUsers  int64            `json:"pending_users"`
	Admins        int64            `json:"admins"`
}

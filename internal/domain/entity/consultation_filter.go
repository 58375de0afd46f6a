package entity

// ConsultationFilter is a domain-level filter for the consultation search.
// Used by repository layer to avoid coupling with delivery DTOs.
type ConsultationFilter struct {
	Patient      string // first or last name of the patient (ILIKE)
	Practitioner string // first or last name of the practitioner (ILIKE)
	Date         string // Format: YYYY-MM-DD, compared with DATE(consulted_at)
	Report       string // substring of the report (ILIKE)
}

// PatientFilter narrows the patient listing.
type PatientFilter struct {
	LastName string
	Limit    int
	Offset   int
}

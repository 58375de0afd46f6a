package converter

import (
	"errors"
	"fmt"
	"time"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/pkg/optional"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp, use YYYY-MM-DDTHH:MM[:SS] or RFC 3339")

// Layouts accepted for timestamps. The naive ones come from HTML
// datetime-local inputs and are read as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// AppointmentToResponse includes the patient and practitioner names when the
// relations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PatientID:      appointment.PatientID,
		PractitionerID: appointment.PractitionerID,
		ScheduledAt:    appointment.ScheduledAt,
		Status:         string(appointment.Status),
		ParentID:       appointment.ParentID,
	}
	if appointment.Patient != nil {
		response.PatientFirstName = appointment.Patient.FirstName
		response.PatientLastName = appointment.Patient.LastName
	}
	if appointment.Practitioner != nil {
		response.PractitionerFirstName = appointment.Practitioner.FirstName
		response.PractitionerLastName = appointment.Practitioner.LastName
	}
	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// UpdateAppointmentRequestToPatch parses the wire fields of a merge-patch.
// Null markers are carried over untouched so the patch itself can reject them.
func UpdateAppointmentRequestToPatch(req *dto.UpdateAppointmentRequest) (entity.AppointmentPatch, error) {
	patch := entity.AppointmentPatch{
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		ParentID:       req.ParentID,
	}

	if req.ScheduledAt.Set {
		if req.ScheduledAt.Null {
			patch.ScheduledAt = optional.Null[time.Time]()
		} else {
			scheduledAt, err := ParseTimestamp(req.ScheduledAt.V)
			if err != nil {
				return entity.AppointmentPatch{}, fmt.Errorf("%w: scheduled_at: %v", entity.ErrInvalidPatch, err)
			}
			patch.ScheduledAt = optional.Of(scheduledAt)
		}
	}

	if req.Status.Set {
		if req.Status.Null {
			patch.Status = optional.Null[entity.AppointmentStatus]()
		} else {
			patch.Status = optional.Of(entity.AppointmentStatus(req.Status.V))
		}
	}

	return patch, patch.Validate()
}

package entity

import (
	"testing"
	"time"

	"medical-office-api/pkg/optional"

	"github.com/stretchr/testify/assert"
)

func newTestAppointment() *Appointment {
	parent := 3
	return &Appointment{
		ID:             42,
		PatientID:      1,
		PractitionerID: 2,
		ScheduledAt:    time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:         AppointmentStatusPending,
		ParentID:       &parent,
	}
}

func TestAppointment_ApplyStatusOnly(t *testing.T) {
	a := newTestAppointment()

	changes := a.Apply(AppointmentPatch{Status: optional.Of(AppointmentStatusConfirmed)})

	assert.Equal(t, map[string]interface{}{"status": AppointmentStatusConfirmed}, changes)
	assert.Equal(t, 1, a.PatientID)
	assert.Equal(t, 2, a.PractitionerID)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), a.ScheduledAt)
	assert.Equal(t, 3, *a.ParentID)
}

func TestAppointment_ApplyClearsParent(t *testing.T) {
	a := newTestAppointment()

	changes := a.Apply(AppointmentPatch{ParentID: optional.Null[int]()})

	assert.Nil(t, a.ParentID)
	assert.Contains(t, changes, "parent_id")
	assert.Nil(t, changes["parent_id"])
}

func TestAppointment_ApplySkipsUnchanged(t *testing.T) {
	a := newTestAppointment()

	changes := a.Apply(AppointmentPatch{
		PatientID: optional.Of(1),
		Status:    optional.Of(AppointmentStatusPending),
		ParentID:  optional.Of(3),
	})

	assert.Empty(t, changes)
}

func TestAppointmentPatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		patch   AppointmentPatch
		wantErr bool
	}{
		{name: "empty", patch: AppointmentPatch{}},
		{name: "valid status", patch: AppointmentPatch{Status: optional.Of(AppointmentStatusCancelled)}},
		{name: "null parent", patch: AppointmentPatch{ParentID: optional.Null[int]()}},
		{name: "unknown status", patch: AppointmentPatch{Status: optional.Of(AppointmentStatus("done"))}, wantErr: true},
		{name: "null status", patch: AppointmentPatch{Status: optional.Null[AppointmentStatus]()}, wantErr: true},
		{name: "null patient", patch: AppointmentPatch{PatientID: optional.Null[int]()}, wantErr: true},
		{name: "null schedule", patch: AppointmentPatch{ScheduledAt: optional.Null[time.Time]()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAutoConsultation(t *testing.T) {
	a := newTestAppointment()

	c := NewAutoConsultation(a)

	assert.Equal(t, 42, c.AppointmentID)
	assert.Equal(t, a.ScheduledAt, c.ConsultedAt)
	assert.Equal(t, AutoConsultationReport, c.Report)
	assert.True(t, c.AutoGenerated)
}

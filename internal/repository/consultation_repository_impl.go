package repository

import (
	"context"
	"errors"

	"medical-office-api/internal/domain/entity"
	domainRepo "medical-office-api/internal/domain/repository"

	"gorm.io/gorm"
)

// insertAutoConsultationSQL writes nothing when the appointment already has a
// consultation. The partial unique index on auto-generated rows backs the
// NOT EXISTS check when two transactions race past it.
const insertAutoConsultationSQL = `
INSERT INTO consultations (appointment_id, consulted_at, report, auto_generated)
SELECT ?, ?, ?, TRUE
WHERE NOT EXISTS (SELECT 1 FROM consultations WHERE appointment_id = ?)
ON CONFLICT (appointment_id) WHERE auto_generated DO NOTHING
RETURNING id`

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Omit("Appointment", "Prescriptions", "Exams").Create(consultation).Error
}

func (r *consultationRepository) CreateAutoGenerated(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) (bool, error) {
	var ids []int
	err := db.WithContext(ctx).Raw(insertAutoConsultationSQL,
		consultation.AppointmentID,
		consultation.ConsultedAt,
		consultation.Report,
		consultation.AppointmentID,
	).Scan(&ids).Error
	if err != nil {
		return false, err
	}
	if len(ids) == 0 {
		return false, nil
	}
	consultation.ID = ids[0]
	consultation.AutoGenerated = true
	return true, nil
}

func (r *consultationRepository) ExistsForAppointment(ctx context.Context, db *gorm.DB, appointmentID int) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Consultation{}).
		Where("appointment_id = ?", appointmentID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.WithContext(ctx).
		Preload("Prescriptions").Preload("Exams").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.WithContext(ctx).Order("consulted_at DESC").Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

// Search joins appointments, patients and practitioners so the filter can
// match names. Every filter field is optional.
func (r *consultationRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.ConsultationFilter) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	query := db.WithContext(ctx).
		Joins("LEFT JOIN appointments ON appointments.id = consultations.appointment_id").
		Joins("LEFT JOIN patients ON patients.id = appointments.patient_id").
		Joins("LEFT JOIN practitioners ON practitioners.id = appointments.practitioner_id")

	if filter != nil {
		if filter.Patient != "" {
			like := "%" + filter.Patient + "%"
			query = query.Where("patients.last_name ILIKE ? OR patients.first_name ILIKE ?", like, like)
		}
		if filter.Practitioner != "" {
			like := "%" + filter.Practitioner + "%"
			query = query.Where("practitioners.last_name ILIKE ? OR practitioners.first_name ILIKE ?", like, like)
		}
		if filter.Date != "" {
			query = query.Where("DATE(consultations.consulted_at) = ?", filter.Date)
		}
		if filter.Report != "" {
			query = query.Where("consultations.report ILIKE ?", "%"+filter.Report+"%")
		}
	}

	err := query.
		Preload("Appointment.Patient").Preload("Appointment.Practitioner").
		Order("consultations.consulted_at DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) Update(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Omit("Appointment", "Prescriptions", "Exams").Save(consultation).Error
}

func (r *consultationRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Consultation{})
	return result.RowsAffected, result.Error
}

func (r *consultationRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Consultation{}).Count(&count).Error
	return count, err
}

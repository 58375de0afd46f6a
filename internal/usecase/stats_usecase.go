package usecase

import (
	"context"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	practitionerRepo repository.PractitionerRepository
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	prescriptionRepo repository.PrescriptionRepository
	examRepo         repository.ExamRepository
	userRepo         repository.UserRepository
	adminRepo        repository.AdminRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	practitionerRepo repository.PractitionerRepository,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	prescriptionRepo repository.PrescriptionRepository,
	examRepo repository.ExamRepository,
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
) StatsUsecase {
	return &statsUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		practitionerRepo: practitionerRepo,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
		prescriptionRepo: prescriptionRepo,
		examRepo:         examRepo,
		userRepo:         userRepo,
		adminRepo:        adminRepo,
	}
}

func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{ByStatus: map[string]int64{}}

	counters := []struct {
		name  string
		count func(context.Context, *gorm.DB) (int64, error)
		dst   *int64
	}{
		{"patients", u.patientRepo.Count, &stats.Patients},
		{"practitioners", u.practitionerRepo.Count, &stats.Practitioners},
		{"consultations", u.consultationRepo.Count, &stats.Consultations},
		{"prescriptions", u.prescriptionRepo.Count, &stats.Prescriptions},
		{"exams", u.examRepo.Count, &stats.Exams},
		{"admins", u.adminRepo.Count, &stats.Admins},
	}
	for _, c := range counters {
		n, err := c.count(ctx, u.db)
		if err != nil {
			u.log.Warnf("Failed to count %s: %+v", c.name, err)
			return nil, err
		}
		*c.dst = n
	}

	byStatus, err := u.appointmentRepo.CountByStatus(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}
	for status, n := range byStatus {
		stats.ByStatus[string(status)] = n
		stats.Appointments += n
	}

	stats.Users, stats.PendingUsers, err = u.userRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	return stats, nil
}

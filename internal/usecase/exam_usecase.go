package usecase

import (
	"context"
	"errors"

	"medical-office-api/internal/converter"
	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"
	"medical-office-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrExamNotFound = errors.New("exam not found")

type ExamUsecase interface {
	CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExams(ctx context.Context, consultationID int) ([]dto.ExamResponse, error)
	UpdateExam(ctx context.Context, id int, req *dto.UpdateExamRequest) (*dto.ExamResponse, error)
	DeleteExam(ctx context.Context, id int) error
}

type examUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	examRepo repository.ExamRepository
}

func NewExamUsecase(db *gorm.DB, log *logrus.Logger, examRepo repository.ExamRepository) ExamUsecase {
	return &examUsecase{
		db:       db,
		log:      log,
		examRepo: examRepo,
	}
}

func (u *examUsecase) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	exam := &entity.Exam{
		ConsultationID: req.ConsultationID,
		Type:           req.Type,
		ExamDate:       req.ExamDate,
		Result:         req.Result,
	}

	if err := u.examRepo.Create(ctx, u.db, exam); err != nil {
		if isForeignKeyError(err, "consultation") {
			return nil, ErrInvalidReference
		}
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) GetExams(ctx context.Context, consultationID int) ([]dto.ExamResponse, error) {
	exams, err := u.examRepo.FindAll(ctx, u.db, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find exams: %+v", err)
		return nil, err
	}

	return converter.ExamsToResponses(exams), nil
}

func (u *examUsecase) UpdateExam(ctx context.Context, id int, req *dto.UpdateExamRequest) (*dto.ExamResponse, error) {
	exam, err := u.examRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	exam.Type = req.Type
	exam.ExamDate = req.ExamDate
	exam.Result = req.Result

	if err := u.examRepo.Update(ctx, u.db, exam); err != nil {
		u.log.Warnf("Failed to update exam: %+v", err)
		return nil, err
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) DeleteExam(ctx context.Context, id int) error {
	affected, err := u.examRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete exam: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrExamNotFound
	}
	return nil
}

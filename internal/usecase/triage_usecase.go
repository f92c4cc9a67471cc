package usecase

import (
	"context"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/infrastructure/ai"

	"github.com/sirupsen/logrus"
)

type TriageUsecase interface {
	Assess(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error)
}

type triageUsecase struct {
	log        *logrus.Logger
	groqClient *ai.GroqClient
}

func NewTriageUsecase(log *logrus.Logger, groqClient *ai.GroqClient) TriageUsecase {
	return &triageUsecase{
		log:        log,
		groqClient: groqClient,
	}
}

// Assess grades a symptom description by severity and points the patient
// at the department to book with.
func (u *triageUsecase) Assess(ctx context.Context, req *dto.TriageRequest) (*dto.TriageResponse, error) {
	assessment, err := u.groqClient.Assess(ctx, req.Symptoms)
	if err != nil {
		u.log.Warnf("Failed to assess symptoms: %+v", err)
		return nil, err
	}

	return &dto.TriageResponse{
		Severity:     assessment.Severity,
		Response:     assessment.Response,
		Category:     assessment.Category,
		BetterPrompt: assessment.BetterPrompt,
	}, nil
}

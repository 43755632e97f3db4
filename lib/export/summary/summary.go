package summaryexport

import (
	"fmt"
	"time"

	interviewapimodels "hr-bot-backend/models/api/interview"
	dbmodels "hr-bot-backend/models/db"
)

type Provider interface {
	Build(rec dbmodels.Candidate) interviewapimodels.ExportDoc
	FileName(sessionID, ext string) string
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// Build собирает итоговый документ скрининга по записи кандидата
func (i impl) Build(rec dbmodels.Candidate) interviewapimodels.ExportDoc {
	answers := make([]interviewapimodels.ExportAnswer, 0, len(rec.TechnicalAnswers.Answers))
	for idx, answer := range rec.TechnicalAnswers.Answers {
		answers = append(answers, interviewapimodels.ExportAnswer{
			ID:        fmt.Sprintf("Q%d", idx+1),
			Question:  answer.Question,
			Answer:    answer.Answer,
			Timestamp: answer.Timestamp,
		})
	}
	return interviewapimodels.ExportDoc{
		CandidateInfo: interviewapimodels.ExportCandidateInfo{
			Name:       rec.FullName,
			Email:      rec.Email,
			Phone:      rec.Phone,
			Experience: rec.ExperienceYears,
			Position:   rec.DesiredPosition,
			Location:   rec.Location,
			TechStack:  rec.TechStack,
		},
		TechnicalAssessment: answers,
		SessionInfo: interviewapimodels.ExportSessionInfo{
			SessionID:      rec.SessionID,
			CreatedAt:      rec.CreatedAt,
			ExportedAt:     time.Now().UTC(),
			TotalQuestions: len(answers),
		},
	}
}

func (i impl) FileName(sessionID, ext string) string {
	shortID := sessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("interview_summary_%s.%s", shortID, ext)
}

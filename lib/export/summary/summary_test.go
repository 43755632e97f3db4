package summaryexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	dbmodels "hr-bot-backend/models/db"
)

func TestBuild(t *testing.T) {
	answeredAt := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	rec := dbmodels.Candidate{
		SessionID:       "3f2b8c1d-aaaa-bbbb-cccc-000000000000",
		FullName:        "John Doe",
		Email:           "john@example.com",
		Phone:           "+1 (234) 567-8901",
		ExperienceYears: "5 years",
		DesiredPosition: "Backend Developer",
		Location:        "Berlin, Germany",
		TechStack:       dbmodels.TechStackList{"Python", "React"},
		TechnicalAnswers: dbmodels.TechnicalAnswers{
			Answers: []dbmodels.TechnicalAnswer{
				{Question: "first question", Answer: "first answer", Timestamp: answeredAt},
				{Question: "second question", Answer: "second answer", Timestamp: answeredAt},
			},
		},
	}

	doc := impl{}.Build(rec)

	t.Run(`candidate info check`, func(t *testing.T) {
		require.Equal(t, "John Doe", doc.CandidateInfo.Name)
		require.Equal(t, "john@example.com", doc.CandidateInfo.Email)
		require.Equal(t, "+1 (234) 567-8901", doc.CandidateInfo.Phone)
		require.Equal(t, "5 years", doc.CandidateInfo.Experience)
		require.Equal(t, "Backend Developer", doc.CandidateInfo.Position)
		require.Equal(t, "Berlin, Germany", doc.CandidateInfo.Location)
		require.Equal(t, []string{"Python", "React"}, doc.CandidateInfo.TechStack)
	})

	t.Run(`assessment ordering and identifiers check`, func(t *testing.T) {
		require.Len(t, doc.TechnicalAssessment, 2)
		require.Equal(t, "Q1", doc.TechnicalAssessment[0].ID)
		require.Equal(t, "first question", doc.TechnicalAssessment[0].Question)
		require.Equal(t, "first answer", doc.TechnicalAssessment[0].Answer)
		require.Equal(t, answeredAt, doc.TechnicalAssessment[0].Timestamp)
		require.Equal(t, "Q2", doc.TechnicalAssessment[1].ID)
	})

	t.Run(`session info check`, func(t *testing.T) {
		require.Equal(t, rec.SessionID, doc.SessionInfo.SessionID)
		require.Equal(t, 2, doc.SessionInfo.TotalQuestions)
		require.WithinDuration(t, time.Now().UTC(), doc.SessionInfo.ExportedAt, time.Minute)
	})

	t.Run(`no answers check`, func(t *testing.T) {
		empty := impl{}.Build(dbmodels.Candidate{SessionID: "s"})
		require.Empty(t, empty.TechnicalAssessment)
		require.Zero(t, empty.SessionInfo.TotalQuestions)
	})
}

func TestFileName(t *testing.T) {
	t.Run(`session id truncated to eight characters check`, func(t *testing.T) {
		name := impl{}.FileName("3f2b8c1d-aaaa-bbbb-cccc-000000000000", "json")
		require.Equal(t, "interview_summary_3f2b8c1d.json", name)
	})

	t.Run(`short session id kept as is check`, func(t *testing.T) {
		require.Equal(t, "interview_summary_abc.xlsx", impl{}.FileName("abc", "xlsx"))
	})
}

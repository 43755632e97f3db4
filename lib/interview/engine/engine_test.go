package engine

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-bot-backend/models"
	dbmodels "hr-bot-backend/models/db"
)

type stubCandidateStore struct {
	saved []dbmodels.Candidate
	err   error
}

func (s *stubCandidateStore) Upsert(rec dbmodels.Candidate) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, rec)
	return "rec-1", nil
}

func (s *stubCandidateStore) GetBySessionID(sessionID string) (*dbmodels.Candidate, error) {
	return nil, nil
}

type stubConversationStore struct {
	recs []dbmodels.Conversation
	err  error
}

func (s *stubConversationStore) Append(rec dbmodels.Conversation) error {
	if s.err != nil {
		return s.err
	}
	s.recs = append(s.recs, rec)
	return nil
}

func (s *stubConversationStore) ListBySession(sessionID string) ([]dbmodels.Conversation, error) {
	return s.recs, nil
}

func newTestEngine() (*Engine, *stubCandidateStore, *stubConversationStore) {
	candStore := &stubCandidateStore{}
	convStore := &stubConversationStore{}
	return New("sess-1", candStore, convStore), candStore, convStore
}

var happyPathInputs = []string{
	"John Doe",
	"john@example.com",
	"+1 (234) 567-8901",
	"5 years",
	"Backend Developer",
	"Berlin, Germany",
	"Python and React",
	"lists are mutable, tuples are not",
	"the GIL serializes bytecode execution",
	"state is internal, props come from the parent",
	"mount, update and unmount callbacks",
}

func TestEngineHappyPath(t *testing.T) {
	eng, candStore, convStore := newTestEngine()

	welcome := eng.Start()
	require.Contains(t, welcome, "full name")
	require.Equal(t, models.StageNameCollection, eng.CurrentStage())
	require.InDelta(t, 10, eng.Progress(), 0.01)

	lastProgress := eng.Progress()
	for _, input := range happyPathInputs {
		reply := eng.Respond(input)
		require.NotEmpty(t, reply)
		require.GreaterOrEqual(t, eng.Progress(), lastProgress)
		lastProgress = eng.Progress()
	}

	require.Equal(t, models.StageConclusion, eng.CurrentStage())
	require.InDelta(t, 90, eng.Progress(), 0.01)
	require.False(t, eng.Ended())

	rec := eng.Candidate()
	require.Equal(t, "John Doe", rec.FullName)
	require.Equal(t, "john@example.com", rec.Email)
	require.Equal(t, "+1 (234) 567-8901", rec.Phone)
	require.Equal(t, "5 years", rec.ExperienceYears)
	require.Equal(t, "Backend Developer", rec.DesiredPosition)
	require.Equal(t, "Berlin, Germany", rec.Location)
	require.Equal(t, dbmodels.TechStackList{"Python", "React"}, rec.TechStack)
	require.Equal(t, 4, eng.TotalQuestions())
	require.Len(t, rec.TechnicalAnswers.Answers, 4)
	require.Equal(t, "lists are mutable, tuples are not", rec.TechnicalAnswers.Answers[0].Answer)

	// терминальный этап: один и тот же ответ, флаг завершения взводится навсегда
	closing := eng.Respond("is there anything else?")
	require.True(t, eng.Ended())
	require.Equal(t, closing, eng.Respond("hello?"))
	require.Equal(t, rec.FullName, eng.Candidate().FullName)

	require.NotEmpty(t, candStore.saved)
	last := candStore.saved[len(candStore.saved)-1]
	require.Equal(t, "sess-1", last.SessionID)
	require.Len(t, last.TechnicalAnswers.Answers, 4)

	// лог диалога: приветствие, затем пары реплика/ответ
	require.Equal(t, models.RoleAssistant, convStore.recs[0].Role)
	require.Equal(t, models.RoleUser, convStore.recs[1].Role)
	require.Equal(t, models.StageNameCollection, convStore.recs[1].Stage)
	require.Equal(t, models.StageEmailCollection, convStore.recs[2].Stage)
}

func TestEngineReprompts(t *testing.T) {
	eng, candStore, _ := newTestEngine()
	eng.Start()
	eng.Respond("John Doe")

	t.Run(`invalid email does not advance check`, func(t *testing.T) {
		reply := eng.Respond("john@")
		require.Contains(t, reply, "valid email")
		require.Equal(t, models.StageEmailCollection, eng.CurrentStage())
		require.Empty(t, eng.Candidate().Email)
	})

	t.Run(`invalid phone does not advance check`, func(t *testing.T) {
		eng.Respond("john@example.com")
		reply := eng.Respond("12345")
		require.Contains(t, reply, "valid phone")
		require.Equal(t, models.StagePhoneCollection, eng.CurrentStage())
		require.Empty(t, eng.Candidate().Phone)
	})

	t.Run(`unrecognized tech stack does not advance check`, func(t *testing.T) {
		eng.Respond("+1 (234) 567-8901")
		eng.Respond("5 years")
		eng.Respond("Backend Developer")
		eng.Respond("Berlin, Germany")
		reply := eng.Respond("I like gardening")
		require.Contains(t, reply, "couldn't identify")
		require.Equal(t, models.StageTechStack, eng.CurrentStage())
		require.Zero(t, eng.TotalQuestions())
	})

	t.Run(`empty free-text input does not advance check`, func(t *testing.T) {
		beforeSaves := len(candStore.saved)
		reply := eng.Respond("   ")
		require.Contains(t, reply, "technical skills")
		require.Equal(t, models.StageTechStack, eng.CurrentStage())
		require.Greater(t, len(candStore.saved), beforeSaves) // запись идемпотентна и уходит на каждом ходу
	})
}

func TestEngineExitKeyword(t *testing.T) {
	eng, _, _ := newTestEngine()
	eng.Start()
	eng.Respond("Jane Smith")

	reply := eng.Respond("EXIT")
	require.True(t, eng.Ended())
	require.Contains(t, reply, "Thank you for your time")

	// после завершения поля не меняются
	eng.Respond("jane@example.com")
	require.Empty(t, eng.Candidate().Email)
	require.Equal(t, "Jane Smith", eng.Candidate().FullName)
}

func TestEngineQuestionCursor(t *testing.T) {
	eng, _, _ := newTestEngine()
	eng.Start()
	for _, input := range happyPathInputs[:7] {
		eng.Respond(input)
	}
	require.Equal(t, models.StageTechnicalQuestions, eng.CurrentStage())
	require.Equal(t, 4, eng.TotalQuestions())

	eng.Respond("first answer")
	firstAnswer := eng.Candidate().TechnicalAnswers.Answers[0]

	reply := eng.Respond("")
	require.Contains(t, reply, "Please provide an answer")
	require.Len(t, eng.Candidate().TechnicalAnswers.Answers, 1)

	eng.Respond("second answer")
	eng.Respond("third answer")
	eng.Respond("fourth answer")
	answers := eng.Candidate().TechnicalAnswers.Answers
	require.Len(t, answers, 4)
	// ранее записанный ответ не меняется до конца сессии
	require.Equal(t, firstAnswer, answers[0])
	require.Equal(t, models.StageConclusion, eng.CurrentStage())
}

func TestEngineDeterministicReplay(t *testing.T) {
	run := func() dbmodels.Candidate {
		eng, _, _ := newTestEngine()
		eng.Start()
		for _, input := range happyPathInputs {
			eng.Respond(input)
		}
		return eng.Candidate()
	}
	first := run()
	second := run()

	require.Equal(t, first.TechStack, second.TechStack)
	require.Equal(t, first.FullName, second.FullName)
	require.Equal(t, first.Email, second.Email)
	require.Len(t, second.TechnicalAnswers.Answers, len(first.TechnicalAnswers.Answers))
	for idx := range first.TechnicalAnswers.Answers {
		require.Equal(t, first.TechnicalAnswers.Answers[idx].Question, second.TechnicalAnswers.Answers[idx].Question)
	}
}

func TestEngineStoreFailuresDoNotBreakDialog(t *testing.T) {
	candStore := &stubCandidateStore{err: errors.New("диск переполнен")}
	convStore := &stubConversationStore{err: errors.New("диск переполнен")}
	eng := New("sess-2", candStore, convStore)

	eng.Start()
	reply := eng.Respond("John Doe")
	require.Contains(t, reply, "email")
	require.Equal(t, models.StageEmailCollection, eng.CurrentStage())
}

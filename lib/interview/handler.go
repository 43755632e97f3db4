package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-bot-backend/config"
	"hr-bot-backend/db"
	"hr-bot-backend/lib/archive"
	summaryexport "hr-bot-backend/lib/export/summary"
	xlsexport "hr-bot-backend/lib/export/xls"
	conversationstore "hr-bot-backend/lib/interview/conversation-store"
	"hr-bot-backend/lib/interview/engine"
	candidatestore "hr-bot-backend/lib/interview/store"
	"hr-bot-backend/lib/smtp"
	interviewapimodels "hr-bot-backend/models/api/interview"
	dbmodels "hr-bot-backend/models/db"
)

var ErrSessionNotFound = errors.New("сессия скрининга не найдена")

type Provider interface {
	Start() (*interviewapimodels.StartView, error)
	Respond(sessionID, message string) (*interviewapimodels.ReplyView, error)
	Progress(sessionID string) (*interviewapimodels.ProgressView, error)
	Summary(sessionID string) (*interviewapimodels.CandidateSummaryView, error)
	History(sessionID string) ([]interviewapimodels.HistoryItemView, error)
	Export(sessionID string) (*interviewapimodels.ExportDoc, error)
	ExportXlsx(sessionID string) (*bytes.Buffer, error)
	Drop(sessionID string)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		sessions:       map[string]*session{},
		candidateStore: candidatestore.NewInstance(db.DB),
		convStore:      conversationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu       sync.RWMutex
	sessions map[string]*session

	candidateStore candidatestore.Provider
	convStore      conversationstore.Provider
}

// session - один независимый прогон скрининга, ходы выполняются строго по одному
type session struct {
	mu       sync.Mutex
	eng      *engine.Engine
	notified bool
}

func (i *impl) Start() (*interviewapimodels.StartView, error) {
	sessionID := uuid.NewString()
	eng := engine.New(sessionID, i.candidateStore, i.convStore)
	greeting := eng.Start()

	i.mu.Lock()
	i.sessions[sessionID] = &session{eng: eng}
	i.mu.Unlock()

	log.WithField("session_id", sessionID).Info("начата сессия скрининга")
	return &interviewapimodels.StartView{
		SessionID: sessionID,
		Message:   greeting,
		Stage:     string(eng.CurrentStage()),
		StageName: eng.StageName(),
		Progress:  eng.Progress(),
	}, nil
}

func (i *impl) Respond(sessionID, message string) (*interviewapimodels.ReplyView, error) {
	sess, err := i.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	reply := sess.eng.Respond(message)
	view := interviewapimodels.ReplyView{
		Message:   reply,
		Stage:     string(sess.eng.CurrentStage()),
		StageName: sess.eng.StageName(),
		Progress:  sess.eng.Progress(),
		Ended:     sess.eng.Ended(),
	}
	if sess.eng.Ended() && !sess.notified {
		sess.notified = true
		i.onSessionEnded(sess.eng.Candidate())
	}
	return &view, nil
}

func (i *impl) Progress(sessionID string) (*interviewapimodels.ProgressView, error) {
	sess, err := i.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return &interviewapimodels.ProgressView{
		Stage:     string(sess.eng.CurrentStage()),
		StageName: sess.eng.StageName(),
		Progress:  sess.eng.Progress(),
		Ended:     sess.eng.Ended(),
	}, nil
}

func (i *impl) Summary(sessionID string) (*interviewapimodels.CandidateSummaryView, error) {
	rec, err := i.getCandidate(sessionID)
	if err != nil {
		return nil, err
	}
	return &interviewapimodels.CandidateSummaryView{
		FullName:          rec.FullName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		ExperienceYears:   rec.ExperienceYears,
		DesiredPosition:   rec.DesiredPosition,
		Location:          rec.Location,
		TechStack:         rec.TechStack,
		QuestionsAnswered: len(rec.TechnicalAnswers.Answers),
	}, nil
}

func (i *impl) History(sessionID string) ([]interviewapimodels.HistoryItemView, error) {
	list, err := i.convStore.ListBySession(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения лога диалога")
	}
	result := make([]interviewapimodels.HistoryItemView, 0, len(list))
	for _, rec := range list {
		result = append(result, interviewapimodels.HistoryItemView{
			Role:      string(rec.Role),
			Content:   rec.Content,
			Stage:     string(rec.Stage),
			Timestamp: rec.CreatedAt,
		})
	}
	return result, nil
}

func (i *impl) Export(sessionID string) (*interviewapimodels.ExportDoc, error) {
	rec, err := i.getCandidate(sessionID)
	if err != nil {
		return nil, err
	}
	doc := summaryexport.Instance.Build(*rec)
	return &doc, nil
}

func (i *impl) ExportXlsx(sessionID string) (*bytes.Buffer, error) {
	rec, err := i.getCandidate(sessionID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportInterviewSummary(*rec)
}

// Drop отбрасывает сессию целиком, сохраненные данные кандидата остаются в БД
func (i *impl) Drop(sessionID string) {
	i.mu.Lock()
	delete(i.sessions, sessionID)
	i.mu.Unlock()
	log.WithField("session_id", sessionID).Info("сессия скрининга сброшена")
}

func (i *impl) getSession(sessionID string) (*session, error) {
	i.mu.RLock()
	sess, exist := i.sessions[sessionID]
	i.mu.RUnlock()
	if !exist {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// getCandidate отдает запись кандидата активной сессии,
// для завершенных процессом ранее сессий - сохраненную в БД
func (i *impl) getCandidate(sessionID string) (*dbmodels.Candidate, error) {
	i.mu.RLock()
	sess, exist := i.sessions[sessionID]
	i.mu.RUnlock()
	if exist {
		sess.mu.Lock()
		rec := sess.eng.Candidate()
		sess.mu.Unlock()
		return &rec, nil
	}
	rec, err := i.candidateStore.GetBySessionID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения данных кандидата")
	}
	if rec == nil {
		return nil, ErrSessionNotFound
	}
	return rec, nil
}

// побочные эффекты завершения: архивация итогового документа и уведомление рекрутеров.
// Оба канала best-effort, сбой не влияет на ответ кандидату.
func (i *impl) onSessionEnded(rec dbmodels.Candidate) {
	logger := log.WithField("session_id", rec.SessionID)
	doc := summaryexport.Instance.Build(rec)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.WithError(err).Error("ошибка сериализации итогового документа")
	} else {
		fileName := summaryexport.Instance.FileName(rec.SessionID, "json")
		if err = archive.Instance.ArchiveSummary(context.Background(), fileName, data); err != nil {
			logger.WithError(err).Error("ошибка архивации итогового документа")
		}
	}
	i.notifyCompletion(logger, rec)
}

func (i *impl) notifyCompletion(logger *log.Entry, rec dbmodels.Candidate) {
	notifyEmail := config.Conf.Smtp.NotifyEmail
	if notifyEmail == "" || rec.FullName == "" {
		return
	}
	message := fmt.Sprintf(
		"Screening session %s completed.\n\nName: %s\nEmail: %s\nPhone: %s\nExperience: %s\nPosition: %s\nLocation: %s\nTech stack: %s\nQuestions answered: %d\n",
		rec.SessionID,
		rec.FullName,
		rec.Email,
		rec.Phone,
		rec.ExperienceYears,
		rec.DesiredPosition,
		rec.Location,
		strings.Join(rec.TechStack, ", "),
		len(rec.TechnicalAnswers.Answers),
	)
	if err := smtp.Instance.SendEMail(notifyEmail, message, "Screening completed"); err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления о завершении скрининга")
	}
}

package engine

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	conversationstore "hr-bot-backend/lib/interview/conversation-store"
	"hr-bot-backend/lib/interview/questions"
	candidatestore "hr-bot-backend/lib/interview/store"
	"hr-bot-backend/lib/interview/tech"
	"hr-bot-backend/lib/interview/validators"
	"hr-bot-backend/models"
	dbmodels "hr-bot-backend/models/db"
)

const maxLogContentLen = 500

// ключевые слова досрочного завершения, сравнение по точному совпадению реплики
var exitKeywords = map[string]struct{}{
	"bye":       {},
	"goodbye":   {},
	"exit":      {},
	"quit":      {},
	"end":       {},
	"stop":      {},
	"finish":    {},
	"terminate": {},
	"close":     {},
	"done":      {},
	"thanks":    {},
	"thank you": {},
}

// Engine - машина этапов скрининга одной сессии.
// Этапы проходятся строго вперед, возвратов и ветвлений нет,
// внутри этапа технических вопросов - счетчик текущего вопроса.
// Состояние живет только в памяти, в БД уходят данные кандидата и лог диалога.
type Engine struct {
	candidate    dbmodels.Candidate
	stageIdx     int
	questionList []string
	questionIdx  int
	ended        bool

	candidateStore candidatestore.Provider
	convStore      conversationstore.Provider
}

func New(sessionID string, candidateStore candidatestore.Provider, convStore conversationstore.Provider) *Engine {
	return &Engine{
		candidate: dbmodels.Candidate{
			SessionID: sessionID,
		},
		candidateStore: candidateStore,
		convStore:      convStore,
	}
}

// Start выполняет приветственный ход без пользовательской реплики
func (e *Engine) Start() string {
	reply := e.dispatch("")
	e.logConversation(models.RoleAssistant, reply)
	return reply
}

// Respond обрабатывает одну реплику кандидата и возвращает ответ бота.
// Любой внутренний сбой превращается в просьбу переформулировать, диалог не падает.
func (e *Engine) Respond(userInput string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			log.
				WithField("session_id", e.candidate.SessionID).
				WithField("stage", e.CurrentStage()).
				Errorf("сбой при обработке реплики: %v", r)
			reply = msgApology
		}
	}()
	e.logConversation(models.RoleUser, userInput)
	switch {
	case e.ended:
		// терминальное состояние, данные больше не меняются
		reply = msgConclusion
	case e.isExitKeyword(userInput):
		e.ended = true
		reply = msgFarewell
	default:
		reply = e.dispatch(strings.TrimSpace(userInput))
	}
	e.logConversation(models.RoleAssistant, reply)
	e.saveCandidate()
	return reply
}

func (e *Engine) CurrentStage() models.InterviewStage {
	if e.stageIdx < len(models.InterviewStages) {
		return models.InterviewStages[e.stageIdx]
	}
	return models.StageConclusion
}

func (e *Engine) StageName() string {
	return e.CurrentStage().ToHuman()
}

// Progress - процент пройденных этапов
func (e *Engine) Progress() float64 {
	return float64(e.stageIdx) / float64(len(models.InterviewStages)) * 100
}

func (e *Engine) Ended() bool {
	return e.ended
}

// Candidate возвращает копию записи кандидата для чтения
func (e *Engine) Candidate() dbmodels.Candidate {
	return e.candidate
}

func (e *Engine) TotalQuestions() int {
	return len(e.questionList)
}

func (e *Engine) advanceStage() {
	e.stageIdx++
	log.
		WithField("session_id", e.candidate.SessionID).
		WithField("stage", e.CurrentStage()).
		Debug("переход на следующий этап скрининга")
}

func (e *Engine) isExitKeyword(userInput string) bool {
	_, exist := exitKeywords[strings.ToLower(strings.TrimSpace(userInput))]
	return exist
}

func (e *Engine) dispatch(input string) string {
	switch e.CurrentStage() {
	case models.StageGreeting:
		e.advanceStage()
		return msgWelcome
	case models.StageNameCollection:
		if input == "" {
			return "Please provide your full name to continue."
		}
		e.candidate.FullName = input
		e.advanceStage()
		return fmt.Sprintf("Nice to meet you, %s!\n\nCould you please provide your email address?", e.candidate.FullName)
	case models.StageEmailCollection:
		if !validators.ValidateEmail(input) {
			return "Please provide a valid email address (e.g. john@example.com)."
		}
		e.candidate.Email = input
		e.advanceStage()
		return "Great! Now, what's your phone number? (include area code)"
	case models.StagePhoneCollection:
		if !validators.ValidatePhone(input) {
			return "Please provide a valid phone number (10 to 15 digits)."
		}
		e.candidate.Phone = input
		e.advanceStage()
		return "Perfect! How many years of professional experience do you have in technology?"
	case models.StageExperience:
		if input == "" {
			return "Please specify your years of experience."
		}
		e.candidate.ExperienceYears = input
		e.advanceStage()
		return "Thanks! What position(s) are you interested in? (e.g. Software Developer, Data Scientist, DevOps Engineer)"
	case models.StagePosition:
		if input == "" {
			return "Please specify the position you're interested in."
		}
		e.candidate.DesiredPosition = input
		e.advanceStage()
		return "Excellent! What's your current location? (city, state/country)"
	case models.StageLocation:
		if input == "" {
			return "Please provide your current location."
		}
		e.candidate.Location = input
		e.advanceStage()
		return msgTechStackPrompt
	case models.StageTechStack:
		return e.handleTechStack(input)
	case models.StageTechnicalQuestions:
		return e.handleTechnicalQuestion(input)
	}
	// заключительный этап, все дальнейшие реплики получают одно и то же прощание
	e.ended = true
	return msgConclusion
}

func (e *Engine) handleTechStack(input string) string {
	if input == "" {
		return "Please tell me about your technical skills and the tools you use."
	}
	techStack := tech.Extract(input)
	if len(techStack) == 0 {
		return msgTechStackRetry
	}
	e.candidate.TechStack = techStack
	// список вопросов формируется единственный раз за сессию
	e.questionList = questions.Generate(techStack)
	e.questionIdx = 0
	e.advanceStage()
	return fmt.Sprintf("Perfect! I've identified your expertise in: %s.\n\nNow I'll ask you %d technical question(s) to assess your proficiency.\n\nQuestion 1: %s",
		strings.Join(techStack, ", "), len(e.questionList), e.questionList[0])
}

func (e *Engine) handleTechnicalQuestion(input string) string {
	if input == "" {
		return "Please provide an answer to continue with the next question."
	}
	e.candidate.TechnicalAnswers.Answers = append(e.candidate.TechnicalAnswers.Answers, dbmodels.TechnicalAnswer{
		Question:  e.questionList[e.questionIdx],
		Answer:    input,
		Timestamp: time.Now().UTC(),
	})
	e.questionIdx++
	if e.questionIdx < len(e.questionList) {
		return fmt.Sprintf("Thank you for your answer!\n\nQuestion %d: %s", e.questionIdx+1, e.questionList[e.questionIdx])
	}
	e.advanceStage()
	return fmt.Sprintf(msgQuestionsDoneFmt, len(e.questionList))
}

// побочный канал, сбой записи не прерывает диалог
func (e *Engine) logConversation(role models.MessageRole, content string) {
	if utf8.RuneCountInString(content) > maxLogContentLen {
		content = string([]rune(content)[:maxLogContentLen])
	}
	err := e.convStore.Append(dbmodels.Conversation{
		SessionID: e.candidate.SessionID,
		Role:      role,
		Content:   content,
		Stage:     e.CurrentStage(),
	})
	if err != nil {
		log.
			WithError(err).
			WithField("session_id", e.candidate.SessionID).
			Error("ошибка записи лога диалога")
	}
}

// побочный канал, сбой записи не прерывает диалог
func (e *Engine) saveCandidate() {
	if e.candidate.FullName == "" {
		return
	}
	id, err := e.candidateStore.Upsert(e.candidate)
	if err != nil {
		log.
			WithError(err).
			WithField("session_id", e.candidate.SessionID).
			Error("ошибка сохранения данных кандидата")
		return
	}
	if e.candidate.ID == "" {
		e.candidate.ID = id
	}
}

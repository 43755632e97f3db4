package interviewapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type StartView struct {
	SessionID string  `json:"session_id"` // Идентификатор сессии скрининга
	Message   string  `json:"message"`    // Приветственное сообщение бота
	Stage     string  `json:"stage"`      // Текущий этап
	StageName string  `json:"stage_name"` // Название этапа
	Progress  float64 `json:"progress"`   // Прогресс, %
}

type MessageRequest struct {
	Message string `json:"message"` // Реплика кандидата
}

func (r MessageRequest) Validate() error {
	if len(r.Message) > 4000 {
		return errors.New("слишком длинное сообщение")
	}
	return nil
}

type ReplyView struct {
	Message   string  `json:"message"`    // Ответ бота
	Stage     string  `json:"stage"`      // Этап после обработки реплики
	StageName string  `json:"stage_name"` // Название этапа
	Progress  float64 `json:"progress"`   // Прогресс, %
	Ended     bool    `json:"ended"`      // Диалог завершен
}

type ProgressView struct {
	Stage     string  `json:"stage"`      // Текущий этап
	StageName string  `json:"stage_name"` // Название этапа
	Progress  float64 `json:"progress"`   // Прогресс, %
	Ended     bool    `json:"ended"`      // Диалог завершен
}

type CandidateSummaryView struct {
	FullName          string   `json:"full_name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	ExperienceYears   string   `json:"experience_years"`
	DesiredPosition   string   `json:"desired_position"`
	Location          string   `json:"location"`
	TechStack         []string `json:"tech_stack"`
	QuestionsAnswered int      `json:"questions_answered"`
}

type HistoryItemView struct {
	Role      string    `json:"role"`    // user/assistant
	Content   string    `json:"content"` // Текст сообщения (до 500 символов)
	Stage     string    `json:"stage"`   // Этап на момент сообщения
	Timestamp time.Time `json:"timestamp"`
}

// ExportDoc - итоговый документ скрининга для выгрузки
type ExportDoc struct {
	CandidateInfo       ExportCandidateInfo `json:"candidate_info"`
	TechnicalAssessment []ExportAnswer      `json:"technical_assessment"`
	SessionInfo         ExportSessionInfo   `json:"session_info"`
}

type ExportCandidateInfo struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Experience string   `json:"experience"`
	Position   string   `json:"position"`
	Location   string   `json:"location"`
	TechStack  []string `json:"tech_stack"`
}

type ExportAnswer struct {
	ID        string    `json:"id"` // Q1, Q2, ...
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type ExportSessionInfo struct {
	SessionID      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	ExportedAt     time.Time `json:"exported_at"`
	TotalQuestions int       `json:"total_questions"`
}

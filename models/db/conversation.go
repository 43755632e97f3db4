package dbmodels

import (
	"time"

	"hr-bot-backend/models"
)

// запись лога диалога, только добавление, без изменений и удалений
type Conversation struct {
	ID        uint                  `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string                `gorm:"type:varchar(36);index" comment:"Идентификатор сессии скрининга"`
	Role      models.MessageRole    `gorm:"type:varchar(20)"`
	Content   string                `gorm:"type:varchar(500)"`
	Stage     models.InterviewStage `gorm:"type:varchar(50)"`
	CreatedAt time.Time             `gorm:"index" json:"created_at"`
}

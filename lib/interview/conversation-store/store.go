package conversationstore

import (
	"gorm.io/gorm"

	dbmodels "hr-bot-backend/models/db"
)

type Provider interface {
	Append(rec dbmodels.Conversation) error
	ListBySession(sessionID string) ([]dbmodels.Conversation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(rec dbmodels.Conversation) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ListBySession(sessionID string) ([]dbmodels.Conversation, error) {
	list := []dbmodels.Conversation{}
	err := i.db.
		Model(dbmodels.Conversation{}).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

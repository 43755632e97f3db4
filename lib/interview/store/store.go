package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-bot-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.Candidate) (id string, err error)
	GetBySessionID(sessionID string) (rec *dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert сохраняет запись кандидата, ключ идемпотентности - идентификатор сессии
func (i impl) Upsert(rec dbmodels.Candidate) (id string, err error) {
	existed, err := i.GetBySessionID(rec.SessionID)
	if err != nil {
		return "", err
	}
	if existed != nil {
		rec.ID = existed.ID
		rec.CreatedAt = existed.CreatedAt
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetBySessionID(sessionID string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
		Where("session_id = ?", sessionID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

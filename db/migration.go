package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-bot-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.Conversation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Conversation")
	}
	log.Info("миграция прошла успешно")
	return nil
}

package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect открывает подключение к хранилищу.
// По умолчанию используется встроенный sqlite файл, для серверных инсталляций - postgres.
func Connect(driver, path, host, port, database, user, pass string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		var dialector gorm.Dialector
		switch driver {
		case "sqlite":
			dialector = sqlite.Open(path)
		case "postgres":
			dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
			dialector = postgres.Open(dbConnString)
		default:
			return errors.Errorf("неизвестный драйвер БД: %s", driver)
		}
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err != nil {
			return errors.Wrap(err, "ошибка подключения к БД")
		}
		if debugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
			DB = db.Debug()
		} else {
			DB = db
		}
		if migrate {
			err = AutoMigrateDB()
			if err != nil {
				return err
			}
		}
		log.Info("сервис успешно подключен к БД")
	}
	return err
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}

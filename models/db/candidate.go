package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type Candidate struct {
	BaseModel
	SessionID        string           `gorm:"type:varchar(36);uniqueIndex" comment:"Идентификатор сессии скрининга"`
	FullName         string           `gorm:"type:varchar(255)"`
	Email            string           `gorm:"type:varchar(255)"`
	Phone            string           `gorm:"type:varchar(255)"`
	ExperienceYears  string           `gorm:"type:varchar(255)"`
	DesiredPosition  string           `gorm:"type:varchar(255)"`
	Location         string           `gorm:"type:varchar(255)"`
	TechStack        TechStackList    `gorm:"type:text" comment:"Распознанные технологии (json)"`
	TechnicalAnswers TechnicalAnswers `gorm:"type:text" comment:"Ответы на технические вопросы (json)"`
}

type TechStackList []string

func (j TechStackList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TechStackList) Scan(value interface{}) error {
	return scanJSON(value, j)
}

type TechnicalAnswers struct {
	Answers []TechnicalAnswer `json:"answers"`
}

type TechnicalAnswer struct {
	Question  string    `json:"question"`  // Текст вопроса
	Answer    string    `json:"answer"`    // Ответ кандидата
	Timestamp time.Time `json:"timestamp"` // Время ответа
}

func (j TechnicalAnswers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *TechnicalAnswers) Scan(value interface{}) error {
	return scanJSON(value, j)
}

// sqlite отдает text-колонки строкой, postgres - байтами
func scanJSON(value interface{}, out interface{}) error {
	switch data := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, out)
	case string:
		return json.Unmarshal([]byte(data), out)
	}
	return errors.New("неподдерживаемый тип json колонки")
}

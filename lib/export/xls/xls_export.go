package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "hr-bot-backend/models/db"
)

type Provider interface {
	ExportInterviewSummary(rec dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Session", "Full name", "Email", "Phone", "Experience", "Position", "Location", "Tech stack"}

var answerHeaders = []string{"#", "Question", "Answer", "Answered at"}

// ExportInterviewSummary выгружает итог скрининга в xlsx: лист с данными кандидата и лист с ответами
func (i impl) ExportInterviewSummary(rec dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = writeCandidateRow(f, sheet, rec, row+1); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования данных кандидата в xlsx")
	}
	f.SetSheetName(sheet, "Candidate")

	if len(rec.TechnicalAnswers.Answers) != 0 {
		if err = writeAnswersSheet(f, rec); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования листа с ответами в xlsx")
		}
	}
	return f.WriteToBuffer()
}

func writeCandidateRow(f *excelize.File, sheet string, rec dbmodels.Candidate, row int) error {
	values := []interface{}{
		rec.SessionID,
		rec.FullName,
		rec.Email,
		rec.Phone,
		rec.ExperienceYears,
		rec.DesiredPosition,
		rec.Location,
		strings.Join(rec.TechStack, ", "),
	}
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func writeAnswersSheet(f *excelize.File, rec dbmodels.Candidate) error {
	sheet := "Answers"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	row, err := writeHeader(f, sheet, 0, answerHeaders)
	if err != nil {
		return err
	}
	for idx, answer := range rec.TechnicalAnswers.Answers {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, idx+1); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, answer.Question); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, answer.Answer); err != nil {
			return err
		}
		col++
		if err := writeColumn(f, sheet, col, row, answer.Timestamp.Format("02.01.2006 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

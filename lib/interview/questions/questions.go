package questions

import "strings"

const (
	maxTechs            = 3
	questionsPerTech    = 2
	maxQuestions        = 5
	genericQuestionsCnt = 3
)

// банк типовых вопросов по технологиям, ключ - имя технологии в нижнем регистре
var questionBank = map[string][]string{
	"python": {
		"What is the difference between list and tuple in Python?",
		"Explain Python's GIL and its implications for multithreading.",
		"How do you handle exceptions in Python?",
	},
	"javascript": {
		"What is the difference between == and === in JavaScript?",
		"Explain closures in JavaScript with an example.",
		"What is the event loop in JavaScript?",
	},
	"react": {
		"What is the difference between state and props in React?",
		"Explain React component lifecycle methods.",
		"What are React Hooks and their benefits?",
	},
	"general": {
		"Describe a challenging technical problem you've solved recently.",
		"How do you stay updated with new technologies?",
		"What's your approach to debugging complex issues?",
	},
}

// Generate подбирает вопросы по распознанному стеку: не более трех технологий
// в порядке списка, до двух вопросов на технологию, всего не более пяти.
// Если по стеку ничего не нашлось - типовой общий набор из трех вопросов.
func Generate(techStack []string) []string {
	result := []string{}
	techs := techStack
	if len(techs) > maxTechs {
		techs = techs[:maxTechs]
	}
	for _, techName := range techs {
		bank, exist := questionBank[strings.ToLower(techName)]
		if !exist {
			continue
		}
		if len(bank) > questionsPerTech {
			bank = bank[:questionsPerTech]
		}
		result = append(result, bank...)
	}
	if len(result) == 0 {
		result = append(result, questionBank["general"][:genericQuestionsCnt]...)
	}
	if len(result) > maxQuestions {
		result = result[:maxQuestions]
	}
	return result
}

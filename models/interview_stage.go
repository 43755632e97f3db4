package models

type InterviewStage string

const (
	StageGreeting           InterviewStage = "greeting"
	StageNameCollection     InterviewStage = "name_collection"
	StageEmailCollection    InterviewStage = "email_collection"
	StagePhoneCollection    InterviewStage = "phone_collection"
	StageExperience         InterviewStage = "experience_collection"
	StagePosition           InterviewStage = "position_collection"
	StageLocation           InterviewStage = "location_collection"
	StageTechStack          InterviewStage = "tech_stack_collection"
	StageTechnicalQuestions InterviewStage = "technical_questions"
	StageConclusion         InterviewStage = "conclusion"
)

// InterviewStages - этапы скрининга в строгом порядке прохождения
var InterviewStages = []InterviewStage{
	StageGreeting,
	StageNameCollection,
	StageEmailCollection,
	StagePhoneCollection,
	StageExperience,
	StagePosition,
	StageLocation,
	StageTechStack,
	StageTechnicalQuestions,
	StageConclusion,
}

var stageHumanName = map[InterviewStage]string{
	StageGreeting:           "Welcome & Introduction",
	StageNameCollection:     "Personal Information",
	StageEmailCollection:    "Contact Details",
	StagePhoneCollection:    "Phone Verification",
	StageExperience:         "Experience Assessment",
	StagePosition:           "Position Interest",
	StageLocation:           "Location Information",
	StageTechStack:          "Technical Skills Assessment",
	StageTechnicalQuestions: "Technical Interview",
	StageConclusion:         "Interview Completion",
}

func (s InterviewStage) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return string(s)
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

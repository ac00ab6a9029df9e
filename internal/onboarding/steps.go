package onboarding

// Step names one screen of the onboarding questionnaire.
type Step string

const (
	StepWelcome           Step = "welcome"
	StepName              Step = "name"
	StepGender            Step = "gender"
	StepBirthYear         Step = "birthYear"
	StepMotivation        Step = "motivation"
	StepFears             Step = "fears"
	StepMotivationCards   Step = "motivationCards"
	StepQuitTime          Step = "quitTime"
	StepQuitDate          Step = "quitDate"
	StepQuitPreparation   Step = "quitPreparation"
	StepStartAge          Step = "startAge"
	StepQuitAttempts      Step = "quitAttempts"
	StepQuitChallenges    Step = "quitChallenges"
	StepCigarettesPerDay  Step = "cigarettesPerDay"
	StepCigarettesPerPack Step = "cigarettesPerPack"
	StepPackPrice         Step = "packPrice"
	StepCalculating       Step = "calculating"
	StepResults           Step = "results"
	StepAchievement       Step = "achievement"
)

// Steps lists every step in forward order, branches included.
var Steps = []Step{
	StepWelcome,
	StepName,
	StepGender,
	StepBirthYear,
	StepMotivation,
	StepFears,
	StepMotivationCards,
	StepQuitTime,
	StepQuitDate,
	StepQuitPreparation,
	StepStartAge,
	StepQuitAttempts,
	StepQuitChallenges,
	StepCigarettesPerDay,
	StepCigarettesPerPack,
	StepPackPrice,
	StepCalculating,
	StepResults,
	StepAchievement,
}

// Answer values that drive the conditional branches.
const (
	QuitTimeUnknown   = "unknown"
	QuitAttemptsNever = "never"
)

// MaxFears caps the Fears multi-select.
const MaxFears = 3

var (
	GenderOptions         = []string{"female", "male", "non_binary", "other"}
	MotivationOptions     = []string{"health", "family", "wellbeing", "savings", "children", "freedom"}
	FearOptions           = []string{"weight_gain", "strong_urge", "stress", "depression", "focus_loss", "withdrawal", "social_missing", "failure"}
	QuitTimeOptions       = []string{"now", "soon", "already", QuitTimeUnknown}
	StartAgeOptions       = []string{"under18", "18-24", "25-34", "35-49", "50-64", "over65"}
	QuitAttemptsOptions   = []string{QuitAttemptsNever, "once", "few", "many"}
	QuitChallengesOptions = []string{"cravings", "stress", "social", "habits", "weight", "mood"}
)

// startAgeLowerBound is the youngest age in each StartAge bracket.
var startAgeLowerBound = map[string]int{
	"under18": 15,
	"18-24":   18,
	"25-34":   25,
	"35-49":   35,
	"50-64":   50,
	"over65":  65,
}

// Options returns the answer ids offered on step, or nil for free-text and
// display-only steps.
func Options(step Step) []string {
	switch step {
	case StepGender:
		return GenderOptions
	case StepMotivation:
		return MotivationOptions
	case StepFears:
		return FearOptions
	case StepQuitTime:
		return QuitTimeOptions
	case StepStartAge:
		return StartAgeOptions
	case StepQuitAttempts:
		return QuitAttemptsOptions
	case StepQuitChallenges:
		return QuitChallengesOptions
	}
	return nil
}

// Index is the position of step in Steps, used for progress bars.
func Index(step Step) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

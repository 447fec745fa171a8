package domain

// Intent is the category assigned to a user query by the classifier.
type Intent string

const (
	IntentEmergency   Intent = "emergency"
	IntentNutrition   Intent = "nutrition"
	IntentExercise    Intent = "exercise"
	IntentMoodSupport Intent = "mood_support"
	IntentScheduling  Intent = "scheduling"
	IntentGeneral     Intent = "general"
)

// AllIntents lists every intent in classification priority order.
var AllIntents = []Intent{
	IntentEmergency,
	IntentNutrition,
	IntentExercise,
	IntentMoodSupport,
	IntentScheduling,
	IntentGeneral,
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type VisitType string

const (
	VisitRoutine   VisitType = "routine"
	VisitScreening VisitType = "screening"
)

type VisitPriority string

const (
	PriorityMedium VisitPriority = "medium"
	PriorityHigh   VisitPriority = "high"
)

// National emergency contact numbers for Bangladesh.
const (
	EmergencyNumber = "999"
	MaternalHotline = "16263"
)

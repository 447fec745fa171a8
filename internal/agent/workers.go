package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/video"
)

// Fallback stage used whenever no medical state is available.
const (
	defaultWorkerTrimester = 2
	defaultWorkerWeek      = 20
)

// standardANCWeeks is the WHO-based antenatal visit schedule.
var standardANCWeeks = []int{20, 26, 30, 34, 36, 38, 40}

const maxUpcomingVisits = 3

// Workers assembles the per-intent fact sheets. Video search failures
// degrade to the static fallback lists and never surface as worker
// errors.
type Workers struct {
	Search video.Searcher
	Now    func() time.Time
}

// NewWorkers creates the worker set with the wall clock.
func NewWorkers(search video.Searcher) *Workers {
	return &Workers{Search: search, Now: time.Now}
}

// Run executes the single worker for the given intent. Exactly one
// fact sheet comes back per query; worker failure lands in Err rather
// than panicking past this boundary.
func (w *Workers) Run(ctx context.Context, intent domain.Intent, input string, profile *domain.PatientProfile, med *domain.MedicalState) (sheet FactSheet) {
	defer func() {
		if r := recover(); r != nil {
			sheet = FactSheet{Kind: intent, Err: fmt.Sprint(r)}
		}
	}()

	switch intent {
	case domain.IntentEmergency:
		return w.emergency()
	case domain.IntentNutrition:
		return w.nutrition(profile, med)
	case domain.IntentExercise:
		return w.exercise(ctx, med)
	case domain.IntentMoodSupport:
		return w.mood(ctx)
	case domain.IntentScheduling:
		return w.scheduling(med)
	default:
		return w.general()
	}
}

func (w *Workers) nutrition(profile *domain.PatientProfile, med *domain.MedicalState) FactSheet {
	trimester, week := defaultWorkerTrimester, defaultWorkerWeek
	context := "No specific patient context"
	if med != nil {
		trimester, week = med.Trimester, med.CurrentWeek
	}
	if profile != nil && med != nil {
		context = fmt.Sprintf("Age: %d, Week: %d, Trimester: %d", profile.Age, med.CurrentWeek, med.Trimester)
	}

	return FactSheet{
		Kind: domain.IntentNutrition,
		Nutrition: &NutritionFacts{
			Trimester:    trimester,
			Week:         week,
			Context:      context,
			FoodsToFocus: trimesterFoods(trimester),
			LocalFoods:   []string{"dal", "rice", "fish", "vegetables", "fruits", "milk", "eggs"},
		},
	}
}

func (w *Workers) exercise(ctx context.Context, med *domain.MedicalState) FactSheet {
	trimester, week := defaultWorkerTrimester, defaultWorkerWeek
	if med != nil {
		trimester, week = med.Trimester, med.CurrentWeek
	}

	videos, err := w.Search.SearchExerciseVideos(ctx, trimester)
	if err != nil {
		videos = video.FallbackExerciseVideos(trimester)
	}

	return FactSheet{
		Kind: domain.IntentExercise,
		Exercise: &ExerciseFacts{
			Trimester:     trimester,
			Week:          week,
			SafeExercises: safeExercises(trimester),
			Videos:        videos,
		},
	}
}

func (w *Workers) mood(ctx context.Context) FactSheet {
	videos, err := w.Search.SearchMoodVideos(ctx)
	if err != nil {
		videos = video.FallbackMoodVideos()
	}

	return FactSheet{
		Kind: domain.IntentMoodSupport,
		Mood: &MoodFacts{
			CopingStrategies: []string{
				"deep breathing",
				"gentle exercise",
				"talking to loved ones",
				"rest",
			},
			Videos: videos,
		},
	}
}

func (w *Workers) scheduling(med *domain.MedicalState) FactSheet {
	if med == nil {
		return FactSheet{Kind: domain.IntentScheduling, Err: "no medical state available"}
	}

	return FactSheet{
		Kind: domain.IntentScheduling,
		Scheduling: &SchedulingFacts{
			CurrentWeek: med.CurrentWeek,
			NextVisits:  nextANCVisits(med.CurrentWeek, w.Now()),
		},
	}
}

func (w *Workers) emergency() FactSheet {
	return FactSheet{
		Kind: domain.IntentEmergency,
		Emergency: &EmergencyFacts{
			Numbers: map[string]string{
				"emergency":        domain.EmergencyNumber,
				"maternal_hotline": domain.MaternalHotline,
			},
			ImmediateActions: []string{
				"Stay calm",
				"Call emergency services if life-threatening",
				"Contact healthcare provider",
				"Have someone stay with you",
			},
		},
	}
}

func (w *Workers) general() FactSheet {
	return FactSheet{
		Kind: domain.IntentGeneral,
		General: &GeneralFacts{
			CommonTopics: []string{
				"pregnancy symptoms",
				"baby development",
				"health monitoring",
				"lifestyle advice",
			},
		},
	}
}

func trimesterFoods(trimester int) []string {
	switch trimester {
	case 1:
		return []string{"ginger tea", "crackers", "bananas", "toast", "small frequent meals"}
	case 3:
		return []string{"fiber-rich foods", "small meals", "hydrating foods", "energy-dense snacks"}
	default:
		return []string{"iron-rich foods", "calcium sources", "protein", "folate-rich vegetables"}
	}
}

func safeExercises(trimester int) []string {
	switch trimester {
	case 1:
		return []string{"walking", "gentle stretching", "prenatal yoga", "swimming"}
	case 3:
		return []string{"gentle walking", "prenatal yoga", "pelvic floor exercises", "stretching"}
	default:
		return []string{"prenatal yoga", "walking", "swimming", "light strength training"}
	}
}

// nextANCVisits filters the standard schedule to the first three visits
// after the current week and projects their calendar dates from now.
func nextANCVisits(currentWeek int, now time.Time) []Visit {
	var visits []Visit
	for _, week := range standardANCWeeks {
		if week <= currentWeek {
			continue
		}
		visits = append(visits, Visit{
			Week:     week,
			Date:     now.AddDate(0, 0, (week-currentWeek)*7),
			Type:     visitType(week),
			Priority: visitPriority(week),
		})
		if len(visits) == maxUpcomingVisits {
			break
		}
	}
	return visits
}

func visitType(week int) domain.VisitType {
	if week == 26 || week == 34 {
		return domain.VisitScreening
	}
	return domain.VisitRoutine
}

func visitPriority(week int) domain.VisitPriority {
	if week == 26 || week == 34 || week == 36 {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

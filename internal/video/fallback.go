package video

// FallbackMoodVideos returns a static mood support list for when
// search is unavailable.
func FallbackMoodVideos() []Video {
	return []Video{
		{
			Title:       "10-Minute Pregnancy Meditation",
			URL:         "https://www.youtube.com/watch?v=5-s7ol7_6rA",
			Duration:    "10:00",
			Description: "A calming guided meditation designed specifically for pregnant mothers",
		},
		{
			Title:       "Positive Pregnancy Affirmations",
			URL:         "https://www.youtube.com/watch?v=K9LTSB-Hf3w",
			Duration:    "15:00",
			Description: "Daily affirmations to boost confidence and reduce anxiety during pregnancy",
		},
		{
			Title:       "Relaxing Music for Pregnancy",
			URL:         "https://www.youtube.com/watch?v=_vQIgmFZ4I0",
			Duration:    "30:00",
			Description: "Peaceful instrumental music perfect for relaxation and stress relief",
		},
	}
}

// FallbackExerciseVideos returns a static exercise list for the given
// trimester. Values outside 1..3 get the third trimester list, the
// most conservative one.
func FallbackExerciseVideos(trimester int) []Video {
	switch trimester {
	case 1:
		return []Video{
			{
				Title:       "First Trimester Prenatal Yoga",
				URL:         "https://www.youtube.com/watch?v=CMbdULKjEg4",
				Duration:    "20:00",
				Description: "Gentle yoga flows perfect for early pregnancy",
			},
			{
				Title:       "Safe First Trimester Exercises",
				URL:         "https://www.youtube.com/watch?v=YGkXpCaDu_c",
				Duration:    "15:00",
				Description: "Low-impact exercises safe for weeks 1-12",
			},
			{
				Title:       "Pregnancy Stretches - First Trimester",
				URL:         "https://www.youtube.com/watch?v=QFCCOfWJpqk",
				Duration:    "12:00",
				Description: "Gentle stretching routine for early pregnancy discomforts",
			},
		}
	case 2:
		return []Video{
			{
				Title:       "Second Trimester Prenatal Yoga",
				URL:         "https://www.youtube.com/watch?v=nRzrWs7HEvo",
				Duration:    "25:00",
				Description: "Energizing yoga practice for the second trimester",
			},
			{
				Title:       "Prenatal Pilates - Second Trimester",
				URL:         "https://www.youtube.com/watch?v=OZh3pNY4vBs",
				Duration:    "30:00",
				Description: "Safe pilates exercises to maintain strength and flexibility",
			},
			{
				Title:       "Walking Workout for Pregnancy",
				URL:         "https://www.youtube.com/watch?v=iUzg9UNqHHs",
				Duration:    "20:00",
				Description: "Indoor walking workout perfect for second trimester",
			},
		}
	default:
		return []Video{
			{
				Title:       "Third Trimester Gentle Yoga",
				URL:         "https://www.youtube.com/watch?v=DjKXi6kEOrU",
				Duration:    "30:00",
				Description: "Restorative yoga for late pregnancy comfort",
			},
			{
				Title:       "Labor Preparation Exercises",
				URL:         "https://www.youtube.com/watch?v=xFibaUGXhg0",
				Duration:    "15:00",
				Description: "Gentle exercises to prepare your body for labor",
			},
			{
				Title:       "Prenatal Stretches for Back Pain",
				URL:         "https://www.youtube.com/watch?v=cC4MKm4gG0w",
				Duration:    "10:00",
				Description: "Targeted stretches to relieve back pain in late pregnancy",
			},
		}
	}
}

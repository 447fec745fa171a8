package agent

import (
	"fmt"
	"strings"

	"github.com/anikatabassum/maatricare/internal/video"
)

const personaHeader = "You are MaatriCare, a compassionate AI agent for pregnant women in Bangladesh."

// Every prompt ends with the same output discipline: structured
// markdown only, no leaked reasoning, English only.
const promptFooter = `**Thinking and Reasoning**
- Do not add any thinking and reasoning steps in the response.

**Language**
- Use English language only.`

func buildEmergencyPrompt(input, contextSummary string, facts *EmergencyFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\nURGENT: The user has indicated an emergency situation. Respond with immediate care while prioritizing safety.\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		b.WriteString("Emergency Information:\n")
		fmt.Fprintf(&b, "- Emergency Services: %s\n", facts.Numbers["emergency"])
		fmt.Fprintf(&b, "- Maternal Hotline: %s\n", facts.Numbers["maternal_hotline"])
		b.WriteString("Immediate actions: " + strings.Join(facts.ImmediateActions, "; ") + "\n")
	}
	b.WriteString(`
Provide a caring but urgent response using STRUCTURED MARKDOWN format:

**🚨 EMERGENCY RESPONSE 🚨**

**Immediate Assessment:**
Acknowledge their situation with empathy

**Critical Actions:**
1. First immediate action
2. Second immediate action
3. Third immediate action

**Safety Guidelines:**
- Safety point 1
- Safety point 2
- Safety point 3

**When to Call Emergency Services (999):**
- Emergency condition 1
- Emergency condition 2

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nUse caring, supportive language and provide immediate actionable guidance. Focus on safety first.")
	return b.String()
}

func buildNutritionPrompt(input, contextSummary string, facts *NutritionFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		fmt.Fprintf(&b, "Nutrition Information: trimester %d, week %d\n", facts.Trimester, facts.Week)
		b.WriteString("Foods to focus on: " + strings.Join(facts.FoodsToFocus, ", ") + "\n")
		b.WriteString("Local staples: " + strings.Join(facts.LocalFoods, ", ") + "\n")
	}
	b.WriteString(`
Provide personalized nutrition advice using STRUCTURED MARKDOWN format:

**🥗 Nutrition Guidance**

**Your Current Needs:**
Address their specific question naturally

**Key Nutrients This Week:**
- **Nutrient 1:** Benefits and why important
- **Nutrient 2:** Benefits and why important
- **Nutrient 3:** Benefits and why important

**Recommended Bangladeshi Foods:**
- **Food 1:** Nutritional benefits
- **Food 2:** Nutritional benefits
- **Food 3:** Nutritional benefits

**Sample Daily Meal Plan:**
**Breakfast:** Specific meal with portions
**Mid-Morning:** Snack suggestion
**Lunch:** Main meal with vegetables
**Afternoon:** Healthy snack
**Dinner:** Balanced evening meal
**Before Bed:** Optional evening snack

**Important Tips:**
- Practical tip 1
- Practical tip 2
- Foods to limit/avoid if relevant

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nUse warm, supportive tone like talking to a friend. Make it feel conversational, not template-like.")
	return b.String()
}

func buildExercisePrompt(input, contextSummary string, facts *ExerciseFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		fmt.Fprintf(&b, "Exercise Information: trimester %d, week %d\n", facts.Trimester, facts.Week)
		b.WriteString("Safe activities: " + strings.Join(facts.SafeExercises, ", ") + "\n")
		b.WriteString("Video resources:\n" + video.FormatForPrompt(facts.Videos) + "\n")
	}
	b.WriteString(`
Provide personalized exercise guidance using STRUCTURED MARKDOWN format:

**🤸‍♀️ Safe Exercise Guide**

**Your Exercise Question:**
Respond to their specific question naturally

**Recommended Activities:**
- **Activity 1:** Benefits and why safe
- **Activity 2:** Benefits and why safe
- **Activity 3:** Benefits and why safe

**Safety Guidelines:**
- **Listen to your body:** Stop if you feel unwell
- **Stay hydrated:** Important during exercise
- **Avoid overheating:** Keep cool and comfortable
- **Consult provider:** Check before starting new routines

**Helpful Resources:**
Include the video links provided above

**Trimester-Specific Tips:**
Provide relevant advice for their current stage

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nUse encouraging, supportive language and make it feel like advice from a caring friend.")
	return b.String()
}

func buildMoodPrompt(input, contextSummary string, facts *MoodFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		b.WriteString("Coping strategies: " + strings.Join(facts.CopingStrategies, ", ") + "\n")
		b.WriteString("Video resources:\n" + video.FormatForPrompt(facts.Videos) + "\n")
	}
	b.WriteString(`
Provide emotional support using STRUCTURED MARKDOWN format:

**💝 Emotional Support**

**Understanding Your Feelings:**
Acknowledge their specific emotional concern with empathy

**You're Not Alone:**
Validate that their feelings are completely normal during pregnancy

**Gentle Coping Strategies:**
- **Deep Breathing:** Take slow, calming breaths
- **Gentle Movement:** Light walking or stretching
- **Connection:** Reach out to loved ones
- **Rest:** Give yourself permission to rest

**Helpful Resources:**
Include the video links provided above

**When to Seek Additional Help:**
- If feelings persist for more than 2 weeks
- If you feel unable to care for yourself
- If you have thoughts of harming yourself or baby

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nUse warm, supportive language like a caring friend who truly understands.")
	return b.String()
}

func buildSchedulingPrompt(input, contextSummary string, facts *SchedulingFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		fmt.Fprintf(&b, "Schedule Information: current week %d\n", facts.CurrentWeek)
		for _, v := range facts.NextVisits {
			fmt.Fprintf(&b, "- Week %d on %s (%s, %s priority)\n",
				v.Week, v.Date.Format("2006-01-02"), v.Type, v.Priority)
		}
	}
	b.WriteString(`
Provide scheduling guidance using STRUCTURED MARKDOWN format:

**📅 Your ANC Schedule**

**Current Status:**
Address their scheduling question naturally

**Upcoming Appointments:**
- **Week X Appointment:** Date and type of visit
- **Week Y Appointment:** Date and type of visit
- **Week Z Appointment:** Date and type of visit

**What to Expect:**
- Routine monitoring and health assessment
- Growth and development checks
- Important screenings at key weeks

**Preparation Tips:**
- Bring your ANC card and any medications
- Prepare questions about your health
- Arrange transportation in advance

**Important Reminders:**
- Regular checkups are vital for you and baby
- Don't miss key screening appointments
- Contact clinic if you need to reschedule

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nMake the schedule feel manageable and reassuring, not overwhelming.")
	return b.String()
}

func buildGeneralPrompt(input, contextSummary string, facts *GeneralFacts) string {
	var b strings.Builder
	b.WriteString(personaHeader)
	b.WriteString("\n\n")
	writeQuestionAndContext(&b, input, contextSummary)
	if facts != nil {
		b.WriteString("Common topics: " + strings.Join(facts.CommonTopics, ", ") + "\n")
	}
	b.WriteString(`
Provide general health guidance using STRUCTURED MARKDOWN format:

**🩺 Health Information**

**Your Question:**
Address their specific question naturally and conversationally

**Key Information:**
- **Point 1:** Relevant health information
- **Point 2:** Practical advice
- **Point 3:** Important considerations

**For Your Stage:**
Provide advice relevant to their pregnancy stage

**Important Reminders:**
- Always consult your healthcare provider for medical concerns
- Trust your instincts about your body
- Regular checkups are important

**When to Contact Your Doctor:**
- If symptoms worsen or change
- If you have new concerns
- For routine appointment scheduling

`)
	b.WriteString(promptFooter)
	b.WriteString("\n\nUse warm, supportive language like a knowledgeable friend who genuinely cares about their wellbeing.")
	return b.String()
}

func writeQuestionAndContext(b *strings.Builder, input, contextSummary string) {
	fmt.Fprintf(b, "User Question: %s\nContext Summary: %s\n", input, contextSummary)
}

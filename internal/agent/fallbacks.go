package agent

import "github.com/anikatabassum/maatricare/internal/domain"

// Static replies used when the model is unavailable or a worker
// failed. These are what the user actually sees in a degraded state,
// so they carry real advice rather than a bare error.

const emergencyFallback = `🚨 **EMERGENCY ALERT** 🚨

Call emergency services (999) immediately if this is life-threatening.
Contact your healthcare provider right away.

Emergency Services: 999
Maternal Emergency Hotline: 16263

⚠️ DO NOT WAIT - Seek immediate medical attention.`

const nutritionFallback = "I'd be happy to help with nutrition advice! For your pregnancy stage, focus on iron-rich foods like leafy greens, protein from fish and eggs, and plenty of fruits. Traditional Bangladeshi foods like dal, rice, fish curry, and seasonal vegetables are excellent choices. Stay hydrated and eat small, frequent meals. Would you like specific meal suggestions?"

const nutritionWorkerFallback = "I'm having trouble providing nutrition advice right now. For immediate guidance, focus on eating a variety of local foods including dal, rice, vegetables, and fruits. Please consult your healthcare provider for personalized nutrition advice."

const exerciseFallback = "For safe pregnancy exercise, I recommend gentle walking, prenatal yoga, and light stretching. Swimming is also wonderful if you have access. Always listen to your body, stay hydrated, and check with your healthcare provider before starting any new routine. Would you like specific exercise suggestions for your stage of pregnancy?"

const exerciseWorkerFallback = "I recommend gentle walking, prenatal yoga, and stretching. Always consult your healthcare provider before starting any exercise routine."

const moodFallback = "I can hear that you're going through a tough time, and I want you to know that what you're feeling is completely normal during pregnancy. Your emotions are valid, and it's okay to have difficult days. Try taking some slow, deep breaths and remember that you're stronger than you know. Would you like to talk about what's specifically bothering you today? 💕"

const schedulingFallback = "I'd be happy to help you keep track of your ANC appointments! Regular checkups are so important for you and your baby's health. Would you like me to help you understand when your next appointment should be, or do you have questions about what to expect during these visits?"

const schedulingWorkerFallback = "I'm having trouble generating your schedule. Please contact your healthcare provider."

const generalFallback = "I'm here to help with your pregnancy journey! Whether you have questions about health, nutrition, exercise, or just need someone to talk to, I'm here for you. What would you like to know more about?"

// genericFailureResponse is the last-resort reply from the pipeline's
// top-level catch.
const genericFailureResponse = "I apologize, but I'm having trouble processing your request right now. Please try again or contact your healthcare provider if this is urgent."

// emergencyFooter follows every emergency reply, model success or not.
// Safety numbers must never depend on model availability.
const emergencyFooter = `

🚨 **EMERGENCY CONTACTS:**
- Emergency Services: 999
- Maternal Emergency Hotline: 16263

⚠️ **DO NOT WAIT** - Seek immediate medical attention if symptoms worsen.`

// moodFooter closes successful mood support replies.
const moodFooter = "\n\nRemember, you're not alone in this journey, and it's completely okay to ask for help. If these feelings persist or worsen, please reach out to your healthcare provider. You're doing wonderfully. 💕"

// gateFallback is the static reply for an intent when the model call
// itself fails after retries.
func gateFallback(intent domain.Intent) string {
	switch intent {
	case domain.IntentEmergency:
		return emergencyFallback
	case domain.IntentNutrition:
		return nutritionFallback
	case domain.IntentExercise:
		return exerciseFallback
	case domain.IntentMoodSupport:
		return moodFallback
	case domain.IntentScheduling:
		return schedulingFallback
	default:
		return generalFallback
	}
}

// workerFallback is the static reply for an intent whose fact sheet
// carries an error; the model is not consulted in that case.
func workerFallback(intent domain.Intent) string {
	switch intent {
	case domain.IntentNutrition:
		return nutritionWorkerFallback
	case domain.IntentExercise:
		return exerciseWorkerFallback
	case domain.IntentScheduling:
		return schedulingWorkerFallback
	default:
		return gateFallback(intent)
	}
}

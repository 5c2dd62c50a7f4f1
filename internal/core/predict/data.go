package predict

import "github.com/agenthands/healthchat/internal/core/model"

// noMatchGuidance is returned when no input token resolves to a known
// symptom.
const noMatchGuidance = "No valid symptoms provided. Try: fever, cough, headache, fatigue, nausea"

// DefaultVocabulary is the fixed demo symptom list. Order matters: the
// matcher resolves ambiguous tokens to the first containing entry.
func DefaultVocabulary() []string {
	return []string{
		"fever", "cough", "headache", "fatigue", "nausea", "vomiting",
		"sneezing", "runny nose", "sore throat", "body aches", "chills",
		"chest pain", "shortness of breath", "dizziness", "rash",
	}
}

// DefaultDatabase is the fixed demo condition database. Declaration
// order is the tie-break for equal overlap scores.
func DefaultDatabase() []model.Condition {
	return []model.Condition{
		{
			Name:           "Common Cold",
			Description:    "Viral infection of the upper respiratory tract causing runny nose, sneezing, and cough",
			Precautions:    []string{"Rest", "Hydrate", "Take Vitamin C", "Use humidifier", "Warm fluids"},
			CommonSymptoms: []string{"fever", "cough", "sneezing", "runny nose", "sore throat"},
		},
		{
			Name:           "Influenza",
			Description:    "Contagious respiratory illness caused by flu viruses with fever, body aches, and fatigue",
			Precautions:    []string{"Rest", "Stay hydrated", "Take antiviral medication", "Use fever reducers", "Isolate yourself"},
			CommonSymptoms: []string{"fever", "cough", "body aches", "fatigue", "chills"},
		},
		{
			Name:           "Migraine",
			Description:    "Severe headache often accompanied by nausea, vomiting, and sensitivity to light and sound",
			Precautions:    []string{"Rest in dark room", "Apply cold compress", "Avoid triggers", "Take prescribed medication", "Stay hydrated"},
			CommonSymptoms: []string{"headache", "nausea", "vomiting", "dizziness"},
		},
		{
			Name:           "Food Poisoning",
			Description:    "Illness caused by consuming contaminated food or water, leading to stomach cramps and diarrhea",
			Precautions:    []string{"Stay hydrated", "Avoid solid foods", "Rest", "Seek medical attention if severe", "BRAT diet"},
			CommonSymptoms: []string{"nausea", "vomiting", "fatigue", "body aches"},
		},
		{
			Name:           "Allergic Rhinitis",
			Description:    "Allergic response causing nasal congestion, sneezing, and itchy eyes",
			Precautions:    []string{"Avoid allergens", "Use antihistamines", "Keep windows closed", "Use air purifier", "Shower after outdoors"},
			CommonSymptoms: []string{"sneezing", "runny nose", "rash", "fatigue"},
		},
	}
}

// fallbackCondition is substituted when no condition shares a symptom
// with the input (or the database is empty).
func fallbackCondition() model.Condition {
	return model.Condition{
		Name:        "General Medical Consultation",
		Description: "Based on your symptoms, it is recommended to consult with a healthcare professional for proper diagnosis.",
		Precautions: []string{"Rest", "Stay hydrated", "Monitor symptoms", "Seek medical attention if symptoms worsen"},
	}
}

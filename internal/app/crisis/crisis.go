package crisis

import "github.com/mindwell/mindwell-api/internal/domain"

// Info returns the fixed emergency contacts and safety steps. The payload
// is a constant; no storage is involved.
func Info() domain.CrisisInfo {
	return domain.CrisisInfo{
		EmergencyContacts: []domain.CrisisContact{
			{
				Name:        "National Suicide Prevention Lifeline",
				Phone:       "988",
				Description: "24/7 free and confidential support",
			},
			{
				Name:        "Crisis Text Line",
				Phone:       "Text HOME to 741741",
				Description: "24/7 crisis support via text",
			},
			{
				Name:        "SAMHSA National Helpline",
				Phone:       "1-800-662-4357",
				Description: "Treatment referral and information service",
			},
		},
		ImmediateSteps: []string{
			"If you're having thoughts of self-harm, please reach out for help immediately",
			"Contact emergency services (911) if in immediate danger",
			"Reach out to a trusted friend, family member, or counselor",
			"Use grounding techniques to help manage overwhelming feelings",
			"Remember: You are not alone, and help is available",
		},
	}
}

package core

import "time"

type (
	// SurveyAnswers holds the onboarding goals survey as the frontend
	// collects it: multi-select answer ids plus a single time horizon.
	SurveyAnswers struct {
		Goals           []string `json:"goals"`
		FocusCategories []string `json:"focus_categories"`
		Nudges          []string `json:"nudges"`
		TimeHorizon     string   `json:"time_horizon"`
	}

	// Profile is a user's persisted survey profile, keyed by the identity
	// provider's user id.
	Profile struct {
		UserID    string        `json:"userId"`
		Email     string        `json:"email,omitempty"`
		Survey    SurveyAnswers `json:"survey"`
		UpdatedAt time.Time     `json:"updatedAt"`
	}
)

package models

type Intent string

const (
	IntentIntervention Intent = "intervention"
	IntentScript       Intent = "script"
	IntentSocial       Intent = "social"
	IntentComfort      Intent = "comfort"
	IntentGeneral      Intent = "general"
)

type ChatMessage struct {
	Message string `json:"message" binding:"required"`
}

type InterventionResponse struct {
	Text   string `json:"response"`
	Intent Intent `json:"type"`
}

package model

// MessageType identifies the kind of chat message the frontend renders.
type MessageType string

const (
	MessageError       MessageType = "error"
	MessageSuggestions MessageType = "suggestions"
	MessageInfo        MessageType = "info"
	MessagePrediction  MessageType = "prediction"
	MessagePrecautions MessageType = "precautions"
	MessageAlternative MessageType = "alternatives"
	MessageSymptoms    MessageType = "symptoms"
	MessageUnmatched   MessageType = "unmatched"
	MessageDisclaimer  MessageType = "disclaimer"
)

// ChatMessage is one display message in a prediction reply. Most types
// only fill Content; prediction messages carry structured fields so the
// frontend can render the headline card.
type ChatMessage struct {
	Type        MessageType `json:"type"`
	Content     string      `json:"content,omitempty"`
	Disease     string      `json:"disease,omitempty"`
	Probability string      `json:"probability,omitempty"`
	Description string      `json:"description,omitempty"`
	Confidence  float64     `json:"confidence,omitempty"`
}

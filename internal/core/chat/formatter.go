// Package chat renders a prediction result into the ordered display
// messages the frontend shows. Formatting is pure: no randomness, no
// side effects.
package chat

import (
	"fmt"
	"strings"

	"github.com/agenthands/healthchat/internal/core/model"
)

const (
	demoErrorNotice   = "💡 **Demo Mode**: Using sample data for demonstration."
	demoSuccessNotice = "💡 **Demo Mode**: Showing sample predictions. For accurate results, train the model with medical data."
	disclaimer        = "⚠️ **Important Disclaimer:** This is a demonstration system and not a substitute for professional medical advice. Always consult with qualified healthcare providers for medical diagnosis and treatment."
)

// Format converts a prediction result into chat messages. Message
// order is contractual: the disclaimer is always last, and optional
// sections appear only when their data is non-empty.
func Format(result *model.PredictionResult) []model.ChatMessage {
	if result.IsError() {
		return formatError(result)
	}

	var messages []model.ChatMessage

	if result.DemoMode {
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageInfo,
			Content: demoSuccessNotice,
		})
	}

	pred := result.TopPrediction
	messages = append(messages, model.ChatMessage{
		Type:        model.MessagePrediction,
		Disease:     pred.Disease,
		Probability: percent(pred.Probability),
		Description: pred.Description,
		Confidence:  pred.Probability,
	})

	if len(pred.Precautions) > 0 {
		var b strings.Builder
		b.WriteString("🛡️ **Recommended Precautions:**\n")
		for i, p := range pred.Precautions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p)
		}
		messages = append(messages, model.ChatMessage{
			Type:    model.MessagePrecautions,
			Content: b.String(),
		})
	}

	if len(result.Alternatives) > 0 {
		var b strings.Builder
		b.WriteString("🔄 **Alternative Possibilities:**\n")
		for _, alt := range result.Alternatives {
			fmt.Fprintf(&b, "• %s (%s)\n", alt.Disease, percent(alt.Probability))
		}
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageAlternative,
			Content: b.String(),
		})
	}

	if len(result.SymptomDetails) > 0 {
		var b strings.Builder
		b.WriteString("🩺 **Symptom Analysis:**\n")
		fmt.Fprintf(&b, "• **Total symptoms identified**: %d\n", len(result.MatchedSymptoms))
		b.WriteString("• **Severity scores** (1-7 scale, higher = more severe):\n")
		for _, d := range result.SymptomDetails {
			fmt.Fprintf(&b, "  - %s: %d/7 %s\n", d.Symptom, d.Severity, strings.Repeat("⭐", d.Severity))
		}
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageSymptoms,
			Content: b.String(),
		})
	}

	if len(result.UnmatchedSymptoms) > 0 {
		var b strings.Builder
		b.WriteString("❓ **Unrecognized Symptoms:**\n")
		b.WriteString(strings.Join(result.UnmatchedSymptoms, ", "))
		b.WriteString("\n")
		if len(result.Suggestions) > 0 {
			b.WriteString("\n💡 **Suggestions:**\n")
			for _, s := range result.Suggestions {
				picks := s.Suggestions
				if len(picks) > 2 {
					picks = picks[:2]
				}
				fmt.Fprintf(&b, "• '%s' → %s\n", s.Original, strings.Join(picks, ", "))
			}
		}
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageUnmatched,
			Content: b.String(),
		})
	}

	return append(messages, model.ChatMessage{
		Type:    model.MessageDisclaimer,
		Content: disclaimer,
	})
}

func formatError(result *model.PredictionResult) []model.ChatMessage {
	messages := []model.ChatMessage{{
		Type:    model.MessageError,
		Content: fmt.Sprintf("⚠️ %s", result.Error),
	}}

	if len(result.Suggestions) > 0 {
		var b strings.Builder
		b.WriteString("💡 Did you mean:\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, "• **%s** → %s\n", s.Original, strings.Join(s.Suggestions, ", "))
		}
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageSuggestions,
			Content: b.String(),
		})
	}

	if result.DemoMode {
		messages = append(messages, model.ChatMessage{
			Type:    model.MessageInfo,
			Content: demoErrorNotice,
		})
	}

	return append(messages, model.ChatMessage{
		Type:    model.MessageDisclaimer,
		Content: disclaimer,
	})
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

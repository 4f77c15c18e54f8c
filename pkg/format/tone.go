package format

import "securitybot/pkg/models"

// Tone is the visual weight a status is rendered with.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
)

var toneEmoji = map[Tone]string{
	ToneSuccess: "🟢",
	ToneWarning: "🟡",
	ToneNeutral: "⚪",
	ToneDanger:  "🔴",
	ToneInfo:    "🔵",
}

// ToneOf maps request, payment and incident statuses to a tone.
func ToneOf(status string) Tone {
	switch status {
	case string(models.RequestActive), string(models.PaymentPaid), string(models.IncidentResolved):
		return ToneSuccess
	case string(models.RequestPending), string(models.IncidentReported), string(models.IncidentUnderReview):
		return ToneWarning
	case string(models.RequestCompleted), string(models.IncidentClosed):
		return ToneNeutral
	case string(models.RequestCancelled), string(models.PaymentRejected):
		return ToneDanger
	default:
		return ToneNeutral
	}
}

func LegalTone(s models.LegalStatus) Tone {
	switch s {
	case models.LegalValid:
		return ToneSuccess
	case models.LegalStolen:
		return ToneDanger
	case models.LegalSeized:
		return ToneWarning
	case models.LegalInProcess:
		return ToneInfo
	default:
		return ToneNeutral
	}
}

func (t Tone) Emoji() string {
	if e, ok := toneEmoji[t]; ok {
		return e
	}
	return toneEmoji[ToneNeutral]
}

// Chip renders a status with its tone marker.
func Chip(status string) string {
	return ToneOf(status).Emoji() + " " + status
}

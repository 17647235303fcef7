package module

import (
	"lexicore/internal/core/sm2"
	"lexicore/internal/core/status"
	"lexicore/internal/platform/config"
	"lexicore/internal/services/reviews/service"
)

// FromConfig reads scheduler and retry knobs from the caller's config
// namespace, so under the API service they live at CORE_API_ENGINE_*
func FromConfig(cfg config.Conf) service.Config {
	ec := cfg.Prefix("ENGINE_")
	return service.Config{
		Engine: sm2.Config{
			MaxIntervalDays: ec.MayInt("MAX_INTERVAL_DAYS", 365),
			FastAnswerMs:    ec.MayInt("FAST_ANSWER_MS", 3000),
		},
		Thresholds: status.Thresholds{
			KnownReps:            ec.MayInt("KNOWN_REPS", 2),
			KnownEase:            ec.MayFloat("KNOWN_EASE", 2.0),
			MasteredReps:         ec.MayInt("MASTERED_REPS", 5),
			MasteredIntervalDays: ec.MayInt("MASTERED_INTERVAL_DAYS", 21),
		},
		MaxRetries: ec.MayInt("TX_RETRIES", 3),
	}
}

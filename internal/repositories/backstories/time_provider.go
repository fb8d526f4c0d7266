package backstories

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mockbackstories github.com/KirkDiggler/backstory-bot-discord/internal/repositories/backstories TimeProvider

type TimeProvider interface {
	Now() time.Time
}

// ClockTimeProvider returns the real wall clock
type ClockTimeProvider struct{}

func (ClockTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

package types

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

func (x Sender) String() string {
	return string(x)
}

// HealthStatus is the backend's reported health. Only "healthy" is treated
// as online; any other value, or a failed probe, means offline.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

func (x HealthStatus) String() string {
	return string(x)
}

func (x HealthStatus) Online() bool {
	return x == HealthStatusHealthy
}

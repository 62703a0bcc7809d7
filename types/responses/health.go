package responses

import "time"

type HealthResponseData struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Version     string    `json:"version,omitempty"`

	// detailed view only
	UptimeSecs float64           `json:"uptime,omitempty"`
	Network    string            `json:"network,omitempty"`
	Services   map[string]string `json:"services,omitempty"`
}

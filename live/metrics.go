package live

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RegisterMetrics exposes the connected client count and a per-reason event
// counter. Call it before Run.
func (h *Hub) RegisterMetrics(registry prometheus.Registerer) error {
	clients := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "leaderboard_admin",
		Name:      "live_clients",
		Help:      "Websocket clients subscribed to leaderboard updates.",
	}, func() float64 { return float64(h.ClientCount()) })

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "leaderboard_admin",
		Name:      "leaderboard_changes_total",
		Help:      "Leaderboard changes published to live clients, by reason.",
	}, []string{"reason"})

	for _, c := range []prometheus.Collector{clients, events} {
		if err := registry.Register(c); err != nil {
			return fmt.Errorf("failed to register live metrics: %w", err)
		}
	}
	h.events = events
	return nil
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "souk",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status transitions",
		},
		[]string{"from", "to"},
	)

	LedgerEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "souk",
			Subsystem: "wallet",
			Name:      "ledger_entries_total",
			Help:      "Total number of wallet ledger entries written",
		},
		[]string{"type", "reason"},
	)
)

func init() {
	Registry.MustRegister(OrderTransitionsTotal, LedgerEntriesTotal)
}

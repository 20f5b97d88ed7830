package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Who may cancel a pre-terminal order: either, buyer_only or seller_only.
	CancellationPolicy string `env:"CANCELLATION_POLICY" envDefault:"either"`

	// Listing bump fee as a fraction of the listing price.
	ItemBumpRate  float64 `env:"ITEM_BUMP_RATE" envDefault:"0.05"`
	ItemBumpHours int     `env:"ITEM_BUMP_HOURS" envDefault:"72"`

	// Notification delivery mode: "db" (stored) or "kafka" (published).
	NotifyMode              string   `env:"NOTIFY_MODE" envDefault:"db"`
	KafkaBrokers            []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"marketplace.notifications"`

	// Optional audit sink for order transitions.
	OpensearchUrls             []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexOrderEvents string   `env:"OPENSEARCH_INDEX_ORDER_EVENTS" envDefault:"order-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

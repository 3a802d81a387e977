package model

import "time"

// ================ Config ================
type HTTPConfig struct {
	Addr         string   `envconfig:"HTTP_ADDR" default:":8080"`
	AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

type CheckoutConfig struct {
	SettlementDelay time.Duration `envconfig:"CHECKOUT_SETTLEMENT_DELAY" default:"2s"`
}

type SessionConfig struct {
	IdleTTL time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
}

type EventsConfig struct {
	ChannelPrefix  string        `envconfig:"CART_EVENTS_CHANNEL_PREFIX" default:"cart"`
	PublishTimeout time.Duration `envconfig:"CART_EVENTS_PUBLISH_TIMEOUT" default:"2s"`
}

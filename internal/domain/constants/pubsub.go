package constants

// Supported event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Audit event identifiers written by the recommendation flow.
const (
	EventTypeCoffee            = "coffee"
	EventNameRecommendedCoffee = "recommended_coffee"
)

// Package constants contains string constants shared across layers.
package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session store providers
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Object storage prefixes
const (
	StoragePrefixSources = "sources"
	StoragePrefixResults = "results"
	StoragePrefixAvatars = "avatars"
	StoragePrefixOrders  = "orders"
)

// DefaultBucketName is used when storage.bucket is not configured.
const DefaultBucketName = "cosplay-artifacts"

// PendingPaymentOrderID marks an order whose payment was started through a static web link.
const PendingPaymentOrderID = "WEB_LINK_PENDING"

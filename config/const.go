package config

// List sizing constants.
const (
	// DefaultCapacity is the initial capacity of an array-backed list.
	DefaultCapacity = 10
	// GrowthFactor multiplies the capacity of a full array-backed list.
	GrowthFactor = 2
)

// DefaultKind is the list kind used when neither a flag nor the environment selects one.
const DefaultKind = "double"

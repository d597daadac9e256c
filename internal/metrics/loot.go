package metrics

// RecordLootAttempt counts one loot attempt under its outcome label
func RecordLootAttempt(outcome string) {
	LootAttempts.WithLabelValues(outcome).Inc()
}

// RecordWeightStored adds stored item weight for the targeted container
func RecordWeightStored(container string, weight int) {
	LootWeightStored.WithLabelValues(container).Add(float64(weight))
}

// RecordContainerRegistered counts a registered container of the given kind
func RecordContainerRegistered(kind string) {
	ContainersRegistered.WithLabelValues(kind).Inc()
}

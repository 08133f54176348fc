package redis

// Redis key naming conventions. All keys are prefixed with "interq:" to
// avoid collisions.

const keyPrefix = "interq:"

// queueKey returns the List key for a queue: interq:queue:{name}
func queueKey(name string) string { return keyPrefix + "queue:" + name }

// scheduledKey is the Sorted Set holding delayed jobs, scored by their
// run-at epoch. The external queue's scheduler drains it.
const scheduledKey = keyPrefix + "scheduled"

// queuesKey is the Set tracking all queue names for enumeration.
const queuesKey = keyPrefix + "queues"

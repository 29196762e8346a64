package domain

// KeyPrefix namespaces every key lectern writes to the store.
const KeyPrefix = "lectern:"

package store

// DefaultStartingAmount is the initial amount of every resource, potatoes included.
const DefaultStartingAmount = 20

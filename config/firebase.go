package config

// Collections written by the booking flow, shared by the Firestore and Mongo sinks.
const (
	OrdersCollection  = "orders"
	RatingsCollection = "ratings"
)

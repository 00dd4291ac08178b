package models

import "time"

// OrderService is the part of a Service kept in an order snapshot.
type OrderService struct {
	ID    string  `firestore:"id" bson:"id" json:"id"`
	Name  string  `firestore:"name" bson:"name" json:"name"`
	Price float64 `firestore:"price" bson:"price" json:"price"`
}

// OrderLine is a cart line frozen at submission time.
type OrderLine struct {
	Service  OrderService `firestore:"service" bson:"service" json:"service"`
	Quantity int          `firestore:"quantity" bson:"quantity" json:"quantity"`
}

// Order is the persisted record of a confirmed booking. CreatedAt is set by
// the sink at write time; a zero value asks Firestore for the server timestamp.
type Order struct {
	ID          string      `firestore:"-" bson:"id" json:"id"`
	UserID      string      `firestore:"userId" bson:"userId" json:"userId"`
	UserEmail   string      `firestore:"userEmail" bson:"userEmail" json:"userEmail"`
	Cart        []OrderLine `firestore:"cart" bson:"cart" json:"cart"`
	Total       float64     `firestore:"total" bson:"total" json:"total"`
	CreatedAt   time.Time   `firestore:"createdAt,serverTimestamp" bson:"createdAt" json:"createdAt"`
	BookingName string      `firestore:"bookingName" bson:"bookingName" json:"bookingName"`
	BookingDate string      `firestore:"bookingDate" bson:"bookingDate" json:"bookingDate"`
	BookingTime string      `firestore:"bookingTime" bson:"bookingTime" json:"bookingTime"`
}

// Rating is one rate action on a service. Ratings accumulate.
type Rating struct {
	ID        string    `firestore:"-" bson:"id" json:"id"`
	UserID    string    `firestore:"userId" bson:"userId" json:"userId"`
	UserEmail string    `firestore:"userEmail" bson:"userEmail" json:"userEmail"`
	ServiceID string    `firestore:"serviceId" bson:"serviceId" json:"serviceId"`
	Rating    int       `firestore:"rating" bson:"rating" json:"rating"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" bson:"createdAt" json:"createdAt"`
}

// RateRequest is the body of POST /api/ratings.
type RateRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
}

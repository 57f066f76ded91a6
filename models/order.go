package models

import "time"

// CustomerInfo identifies the person a booking is made for.
type CustomerInfo struct {
	FirstName string `bson:"first_name" json:"firstName" binding:"required"`
	LastName  string `bson:"last_name" json:"lastName" binding:"required"`
	Phone     string `bson:"phone" json:"phone" binding:"required"` // normalized to "0XXXXXXXXX" before storage
}

// ServiceDetails describes what is being booked.
type ServiceDetails struct {
	ServiceID   string  `bson:"service_id" json:"serviceId"`
	ServiceName string  `bson:"service_name" json:"serviceName"`
	Price       float64 `bson:"price,omitempty" json:"price,omitempty"`
	Note        string  `bson:"note,omitempty" json:"note,omitempty"`
}

// Order is a confirmed booking record.
type Order struct {
	ID         string         `bson:"id" json:"id"` // UUID
	ProviderID string         `bson:"provider_id" json:"provider_id"`
	Customer   CustomerInfo   `bson:"customer" json:"customer"`
	Service    ServiceDetails `bson:"service" json:"service"`
	Date       string         `bson:"date" json:"date"` // "2006-01-02"
	Time       string         `bson:"time" json:"time"` // 24-hour "HH:MM"
	Status     string         `bson:"status" json:"status"` // e.g. "pending"
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
}

// BookingRequest is the submission payload validated by the booking gate
// before an order is created.
type BookingRequest struct {
	Customer CustomerInfo   `json:"customer" binding:"required"`
	Service  ServiceDetails `json:"service"`
	Date     string         `json:"date" binding:"required"`
	Time     string         `json:"time" binding:"required"`
}

package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	// Patient events
	EventPatientAdmitted   = "patient.admitted"
	EventPatientDischarged = "patient.discharged"

	// Bed events
	EventBedCreated = "bed.created"

	// Inventory events
	EventInventoryUpdated = "inventory.updated"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// PatientAdmittedEvent is published when a patient is admitted and a bed assigned.
type PatientAdmittedEvent struct {
	BaseEvent
	Data PatientAdmittedData `json:"data"`
}

type PatientAdmittedData struct {
	PatientID     int    `json:"patient_id"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	BedID         int    `json:"bed_id"`
	AdmissionDate string `json:"admission_date"`
}

// PatientDischargedEvent is published when a patient is discharged and the bed freed.
type PatientDischargedEvent struct {
	BaseEvent
	Data PatientDischargedData `json:"data"`
}

type PatientDischargedData struct {
	PatientID     int    `json:"patient_id"`
	BedID         int    `json:"bed_id"`
	DischargeDate string `json:"discharge_date"`
}

// BedCreatedEvent is published when a bed is added manually.
type BedCreatedEvent struct {
	BaseEvent
	Data BedCreatedData `json:"data"`
}

type BedCreatedData struct {
	BedID  int    `json:"bed_id"`
	Ward   string `json:"ward"`
	Room   string `json:"room"`
	Status string `json:"status"`
}

// InventoryUpdatedEvent is published when stock is created or edited.
type InventoryUpdatedEvent struct {
	BaseEvent
	Data InventoryUpdatedData `json:"data"`
}

type InventoryUpdatedData struct {
	ItemID   int    `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: "hospital-frontdesk",
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// TontineStatus is the lifecycle stage of a tontine on the backend.
type TontineStatus string

const (
	TontineStatusPending   TontineStatus = "pending"
	TontineStatusActive    TontineStatus = "active"
	TontineStatusCompleted TontineStatus = "completed"
)

// Tontine is a rotating savings group the member belongs to.
type Tontine struct {
	ID                 uuid.UUID       `json:"id"`
	Code               string          `json:"code"` // Short code members share to invite others.
	Name               string          `json:"name"`
	Status             TontineStatus   `json:"status"`
	ContributionAmount int64           `json:"contributionAmount"` // Minor currency units.
	Currency           string          `json:"currency"`
	Frequency          string          `json:"frequency"` // e.g. "weekly", "monthly".
	StartDate          time.Time       `json:"startDate"`
	Members            []TontineMember `json:"members,omitempty"`
}

// TontineMember is one participant of a tontine.
type TontineMember struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Position int       `json:"position"` // Order in which the member receives the pot.
	HasDrawn bool      `json:"hasDrawn"`
}

// TirageStatus is the state of a draw.
type TirageStatus string

const (
	TirageStatusScheduled TirageStatus = "scheduled"
	TirageStatusCompleted TirageStatus = "completed"
	TirageStatusCancelled TirageStatus = "cancelled"
)

// Tirage is a draw/payout event within a tontine.
type Tirage struct {
	ID              uuid.UUID    `json:"id"`
	TontineID       uuid.UUID    `json:"tontineId"`
	Round           int          `json:"round"`
	Status          TirageStatus `json:"status"`
	BeneficiaryID   uuid.UUID    `json:"beneficiaryId"`
	BeneficiaryName string       `json:"beneficiaryName"`
	Amount          int64        `json:"amount"`
	ScheduledAt     time.Time    `json:"scheduledAt"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
}

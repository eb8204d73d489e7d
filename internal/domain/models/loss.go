package models

import (
	"strings"
	"time"
)

// LossSourceType names the collection a loss depletes stock from.
type LossSourceType string

const (
	LossSourceInventory LossSourceType = "inventory"
	LossSourceHarvest   LossSourceType = "harvest"
)

// Valid reports whether the source type names a known collection.
func (t LossSourceType) Valid() bool {
	switch t {
	case LossSourceInventory, LossSourceHarvest:
		return true
	}
	return false
}

// Loss represents a recorded merma. SourceType and SourceID are either both set
// or both empty; the reference is weak, so the source may no longer exist.
type Loss struct {
	ID          string         `json:"id" bson:"id"`
	ProductName string         `json:"productName" bson:"product_name"`
	Quantity    int            `json:"quantity" bson:"quantity"`
	Reason      string         `json:"reason" bson:"reason"`
	Date        time.Time      `json:"date" bson:"date"`
	RecordedBy  UserRole       `json:"recordedBy" bson:"recorded_by"`
	PartnerName string         `json:"recordedByPartnerName,omitempty" bson:"partner_name,omitempty"`
	SourceType  LossSourceType `json:"sourceType,omitempty" bson:"source_type,omitempty"`
	SourceID    string         `json:"sourceId,omitempty" bson:"source_id,omitempty"`
}

// LossInput carries the raw form values for recording a loss. A merma always
// involves a positive quantity.
type LossInput struct {
	ProductName string         `json:"productName" binding:"required"`
	Quantity    float64        `json:"quantity" binding:"gt=0"`
	Reason      string         `json:"reason" binding:"required"`
	Date        time.Time      `json:"date"`
	RecordedBy  UserRole       `json:"recordedBy" binding:"required"`
	PartnerName string         `json:"recordedByPartnerName"`
	SourceType  LossSourceType `json:"sourceType"`
	SourceID    string         `json:"sourceId"`
}

// Materialize normalizes the input and produces the loss stored under id.
// A half-specified source reference is cleared entirely.
func (in LossInput) Materialize(id string) Loss {
	sourceType := in.SourceType
	sourceID := strings.TrimSpace(in.SourceID)
	if sourceType == "" || sourceID == "" {
		sourceType = ""
		sourceID = ""
	}

	return Loss{
		ID:          id,
		ProductName: strings.TrimSpace(in.ProductName),
		Quantity:    NormalizeQuantity(in.Quantity),
		Reason:      strings.TrimSpace(in.Reason),
		Date:        in.Date,
		RecordedBy:  in.RecordedBy,
		PartnerName: NormalizePartnerName(in.RecordedBy, in.PartnerName),
		SourceType:  sourceType,
		SourceID:    sourceID,
	}
}

package models

import (
	"strings"
	"time"
)

// HarvestCategory classifies harvest lots by quality grade.
type HarvestCategory string

const (
	CategoryPrimera HarvestCategory = "primera"
	CategorySegunda HarvestCategory = "segunda"
	CategoryTercera HarvestCategory = "tercera"
)

// Valid reports whether the category is a known harvest grade.
func (c HarvestCategory) Valid() bool {
	switch c {
	case CategoryPrimera, CategorySegunda, CategoryTercera:
		return true
	}
	return false
}

// Harvest represents a recorded harvest lot.
type Harvest struct {
	ID               string          `json:"id" bson:"id"`
	Crop             string          `json:"crop" bson:"crop"`
	Category         HarvestCategory `json:"category" bson:"category"`
	Quantity         int             `json:"quantity" bson:"quantity"`
	Date             time.Time       `json:"date" bson:"date"`
	RecordedBy       UserRole        `json:"recordedBy" bson:"recorded_by"`
	PartnerName      string          `json:"recordedByPartnerName,omitempty" bson:"partner_name,omitempty"`
	PurchasePriceClp *int            `json:"purchasePriceClp,omitempty" bson:"purchase_price_clp,omitempty"`
	SalePriceClp     *int            `json:"salePriceClp,omitempty" bson:"sale_price_clp,omitempty"`
}

// HarvestInput carries the raw form values for creating or replacing a harvest.
type HarvestInput struct {
	Crop             string          `json:"crop" binding:"required"`
	Category         HarvestCategory `json:"category" binding:"required"`
	Quantity         float64         `json:"quantity"`
	Date             time.Time       `json:"date"`
	RecordedBy       UserRole        `json:"recordedBy" binding:"required"`
	PartnerName      string          `json:"recordedByPartnerName"`
	PurchasePriceClp *float64        `json:"purchasePriceClp"`
	SalePriceClp     *float64        `json:"salePriceClp"`
}

// Materialize normalizes the input and produces the harvest stored under id.
func (in HarvestInput) Materialize(id string) Harvest {
	return Harvest{
		ID:               id,
		Crop:             strings.TrimSpace(in.Crop),
		Category:         in.Category,
		Quantity:         NormalizeQuantity(in.Quantity),
		Date:             in.Date,
		RecordedBy:       in.RecordedBy,
		PartnerName:      NormalizePartnerName(in.RecordedBy, in.PartnerName),
		PurchasePriceClp: NormalizePrice(in.PurchasePriceClp),
		SalePriceClp:     NormalizePrice(in.SalePriceClp),
	}
}

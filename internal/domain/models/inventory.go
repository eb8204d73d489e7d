package models

import "strings"

// InventoryCategory classifies inventory supplies.
type InventoryCategory string

const (
	CategoryPlanta       InventoryCategory = "planta"
	CategoryFertilizante InventoryCategory = "fertilizante"
	CategoryPesticida    InventoryCategory = "pesticida"
	CategoryHerramienta  InventoryCategory = "herramienta"
)

// InventoryUnit is the single stock unit used across the cooperative.
const InventoryUnit = "unidades"

// Valid reports whether the category is a known inventory category.
func (c InventoryCategory) Valid() bool {
	switch c {
	case CategoryPlanta, CategoryFertilizante, CategoryPesticida, CategoryHerramienta:
		return true
	}
	return false
}

// InventoryItem represents a stocked supply.
type InventoryItem struct {
	ID          string            `json:"id" bson:"id"`
	Name        string            `json:"name" bson:"name"`
	Quantity    int               `json:"quantity" bson:"quantity"`
	Unit        string            `json:"unit" bson:"unit"`
	Category    InventoryCategory `json:"category" bson:"category"`
	RecordedBy  UserRole          `json:"recordedBy" bson:"recorded_by"`
	PartnerName string            `json:"recordedByPartnerName,omitempty" bson:"partner_name,omitempty"`
}

// InventoryItemInput carries the raw form values for creating or replacing an item.
type InventoryItemInput struct {
	Name        string            `json:"name" binding:"required"`
	Quantity    float64           `json:"quantity"`
	Category    InventoryCategory `json:"category" binding:"required"`
	RecordedBy  UserRole          `json:"recordedBy" binding:"required"`
	PartnerName string            `json:"recordedByPartnerName"`
}

// Materialize normalizes the input and produces the item stored under id.
func (in InventoryItemInput) Materialize(id string) InventoryItem {
	return InventoryItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Quantity:    NormalizeQuantity(in.Quantity),
		Unit:        InventoryUnit,
		Category:    in.Category,
		RecordedBy:  in.RecordedBy,
		PartnerName: NormalizePartnerName(in.RecordedBy, in.PartnerName),
	}
}

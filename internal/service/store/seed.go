package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// seedHarvests returns the demo harvest lots used when no persisted data exists.
func seedHarvests(now time.Time) []models.Harvest {
	return []models.Harvest{
		{
			ID:          uuid.NewString(),
			Crop:        "Café Arábica",
			Category:    models.CategoryPrimera,
			Quantity:    13,
			Date:        now.Add(-27 * time.Hour),
			RecordedBy:  models.RoleSocio,
			PartnerName: "Coop Andina",
		},
		{
			ID:          uuid.NewString(),
			Crop:        "Cacao Premium",
			Category:    models.CategorySegunda,
			Quantity:    8,
			Date:        now.Add(-102 * time.Hour),
			RecordedBy:  models.RoleSocio,
			PartnerName: "Finca Aurora",
		},
	}
}

// seedInventory returns the demo inventory used when no persisted data exists.
func seedInventory() []models.InventoryItem {
	items := []struct {
		name     string
		quantity int
		category models.InventoryCategory
	}{
		{"Fertilizante orgánico A", 18, models.CategoryFertilizante},
		{"Pesticida biológico X", 9, models.CategoryPesticida},
		{"Semillas de quinoa", 25, models.CategoryPlanta},
		{"Guantes de nitrilo", 6, models.CategoryHerramienta},
		{"Mangueras de riego", 14, models.CategoryHerramienta},
		{"Trampas para insectos", 4, models.CategoryPesticida},
	}

	inventory := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		inventory = append(inventory, models.InventoryItem{
			ID:         uuid.NewString(),
			Name:       item.name,
			Quantity:   item.quantity,
			Unit:       models.InventoryUnit,
			Category:   item.category,
			RecordedBy: models.RoleAdministrador,
		})
	}
	return inventory
}

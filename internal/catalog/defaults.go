package catalog

import (
	"time"

	"github.com/tassuhoiva/booking-api/internal/model"
)

// FullCatalogSize is the number of offerings in the complete catalog. A
// remote fetch that comes back with fewer complete records than this is
// treated as broken and replaced wholesale by the defaults.
const FullCatalogSize = 6

// DefaultCatalog returns the built-in service catalog. It is the fallback for
// every catalog-fetch failure: the public booking page must always have
// something to offer, so an unreachable or half-migrated remote store
// degrades to this list instead of an error.
func DefaultCatalog() []model.Service {
	now := time.Now()
	return []model.Service{
		{
			ID:          "1",
			Name:        "Kotikäynnit",
			Price:       35,
			Description: "Hoivaa lemmikillesi kotoa käsin. Mukavaa ja stressitöntä hoivaa tutussa ympäristössä.",
			Duration:    60,
			Category:    model.CategoryHomeVisit,
			Features:    []string{"Lääkärintarkastus kotona", "Rokotukset kotona", "Hoidot kotona", "Yksilöllinen hoito"},
			Icon:        "ri-home-heart-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Lemmikkien Hoitola",
			Price:       25,
			Description: "Moderni hoitola täydellä varustuksella kaikille lemmikkien hoitotarpeille.",
			Duration:    120,
			Category:    model.CategoryClinic,
			Features:    []string{"Päivittäinen hoito", "Lääkärintarkastukset", "Hoidot ja toimenpiteet", "Valvottu ympäristö"},
			Icon:        "ri-hospital-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Yöhoito Omassa Kodissasi",
			Price:       50,
			Description: "Yöpäivystyspalvelu lemmikillesi kotona. Rauhallinen yöhoito tutussa ympäristössä.",
			Duration:    480,
			Category:    model.CategoryOvernight,
			Features:    []string{"Yöpäivystys kotona", "Valvonta ja hoito", "Hätätilanteet", "Rauhallinen yö"},
			Icon:        "ri-moon-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Koirapäiväkoti Tuntivelvollisuudella",
			Price:       15,
			Description: "Koirapäiväkoti, jossa koirasi voi viettää päivänsä muiden koirien kanssa.",
			Duration:    480,
			Category:    model.CategoryDaycare,
			Features:    []string{"Päivähoito koirille", "Sosiaalinen leikki", "Valvottu toiminta", "Joustava aikataulu"},
			Icon:        "ri-calendar-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "5",
			Name:        "Koiran Ulkoilutus",
			Price:       12,
			Description: "Ammattitaitoista ulkoilutuspalvelua koirillesi. Säännölliset lenkit ja liikunta.",
			Duration:    30,
			Category:    model.CategoryWalking,
			Features:    []string{"Säännölliset lenkit", "Liikunta ja harjoittelu", "Turvallinen ulkoilu", "Henkilökohtainen palvelu"},
			Icon:        "ri-walk-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "6",
			Name:        "Lemmikkitaksi",
			Price:       20,
			Description: "Turvallinen kuljetuspalvelu lemmikeillesi. Kuljetamme lemmikkejä turvallisesti.",
			Duration:    45,
			Category:    model.CategoryTransport,
			Features:    []string{"Turvallinen kuljetus", "Mukava matka", "Joustava aikataulu", "Erityisvarusteet"},
			Icon:        "ri-car-line",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

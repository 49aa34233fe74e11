package compare

import "github.com/framehouse/estimate-cli/internal/model"

// DemoPair returns the built-in sample pair used by the demo command. The
// numbers mirror a real frame-versus-prefab quote and double as a stable
// regression anchor for the scoring pipeline.
func DemoPair() (competitor, our model.OfferRecord) {
	competitor = model.OfferRecord{
		Price:               2450000,
		Currency:            "RUB",
		Delivery:            150000,
		Weight:              12000,
		Thickness:           150,
		InsulationType:      model.InsulationMineral,
		InsulationThickness: 150,
		Energy:              "C",
		InstallationTime:    14,
		Complexity:          model.ComplexityMedium,
		StructureType:       model.StructureFrame,
		FoundationType:      model.FoundationStrip,
		WindBarrier:         true,
		Waterproofing:       true,
		WeatherDependent:    true,
	}
	our = model.OfferRecord{
		Price:                2180000,
		Currency:             "RUB",
		Delivery:             95000,
		Weight:               10500,
		Thickness:            200,
		InsulationType:       model.InsulationBasalt,
		InsulationThickness:  200,
		Energy:               "A+",
		InstallationTime:     10,
		Complexity:           model.ComplexityEasy,
		StructureType:        model.StructurePrefab,
		FoundationType:       model.FoundationSlab,
		VaporBarrier:         true,
		WindBarrier:          true,
		FullInsulation:       true,
		FactoryPrep:          true,
		FoundationInsulation: true,
		Waterproofing:        true,
		Impregnation:         true,
		Eco:                  true,
		FireProtection:       true,
	}
	return competitor, our
}

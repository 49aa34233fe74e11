package model

// Side identifies which party an offer belongs to in a comparison.
type Side string

const (
	SideCompetitor Side = "competitor"
	SideOur        Side = "our"
)

// StructureType is the load-bearing structure category of an offer.
type StructureType string

const (
	StructurePrefab   StructureType = "prefab"
	StructureCLT      StructureType = "clt"
	StructureFrame    StructureType = "frame"
	StructureAerated  StructureType = "aerated"
	StructureBrick    StructureType = "brick"
	StructureConcrete StructureType = "concrete"
)

// InsulationType is the wall insulation material category.
type InsulationType string

const (
	InsulationPIR     InsulationType = "pir"
	InsulationXPS     InsulationType = "xps"
	InsulationBasalt  InsulationType = "basalt"
	InsulationMineral InsulationType = "mineral"
	InsulationEPS     InsulationType = "eps"
	InsulationEco     InsulationType = "eco"
)

// FoundationType is the foundation category.
type FoundationType string

const (
	FoundationSlab     FoundationType = "slab"
	FoundationBasement FoundationType = "basement"
	FoundationStrip    FoundationType = "strip"
	FoundationPile     FoundationType = "pile"
	FoundationScrew    FoundationType = "screw"
)

// Complexity is the installation complexity grade. Extraction never yields
// "easy"; that grade only enters through manual input.
type Complexity string

const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

// OfferRecord is the canonical comparable representation of one side's
// offer. Monetary fields (Price, Delivery) are in the offer's own currency,
// carried in Currency. The record is never currency-converted; conversion
// is a display concern.
//
// Zero values mean "not provided": 0 for numerics, "" for enums and
// strings, false for flags. Display renders them as placeholders; scoring
// treats them as worst case.
type OfferRecord struct {
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
	Delivery float64 `json:"delivery"`

	Area          float64        `json:"area"`
	Floors        string         `json:"floors,omitempty"`
	RoofType      string         `json:"roof_type,omitempty"`
	StructureType StructureType  `json:"structure_type,omitempty"`
	FoundationType FoundationType `json:"foundation_type,omitempty"`

	DeliveryMethod string  `json:"delivery_method,omitempty"`
	Weight         float64 `json:"weight"` // kg

	Thickness           float64        `json:"thickness"`            // wall, mm
	InsulationType      InsulationType `json:"insulation_type,omitempty"`
	InsulationThickness float64        `json:"insulation_thickness"` // mm

	Energy string `json:"energy,omitempty"` // A++ .. E, ordered scale

	VaporBarrier         bool `json:"vapor_barrier"`
	WindBarrier          bool `json:"wind_barrier"`
	FullInsulation       bool `json:"full_insulation"`
	FactoryPrep          bool `json:"factory_prep"`
	FoundationInsulation bool `json:"foundation_insulation"`
	Waterproofing        bool `json:"waterproofing"`
	WeatherDependent     bool `json:"weather_dependent"`
	CraneNeeded          bool `json:"crane_needed"`
	Impregnation         bool `json:"impregnation"`
	Eco                  bool `json:"eco"`
	FireProtection       bool `json:"fire_protection"`

	InstallationTime float64    `json:"installation_time"` // days
	Complexity       Complexity `json:"complexity,omitempty"`
	Region           string     `json:"region,omitempty"` // informational, not scored
}

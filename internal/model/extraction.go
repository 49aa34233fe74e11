package model

// ExtractionResult is the semi-structured record returned by the document
// extraction provider. Source documents vary by language and layout, so
// every section is optional and string values may be in any language; the
// mapper normalizes them into an OfferRecord.
type ExtractionResult struct {
	Document   *DocumentInfo  `json:"document,omitempty"`
	Company    *CompanyInfo   `json:"company,omitempty"`
	Client     *ClientInfo    `json:"client,omitempty"`
	Project    *ProjectInfo   `json:"project,omitempty"`
	Packages   []Package      `json:"packages,omitempty"`
	Options    *Options       `json:"options,omitempty"`
	Foundation *Foundation    `json:"foundation,omitempty"`
	Transport  []Transport    `json:"transport,omitempty"`
	Assembly   *Assembly      `json:"assembly,omitempty"`
}

// DocumentInfo describes the source document itself.
type DocumentInfo struct {
	Type       string `json:"type,omitempty"`
	Number     string `json:"number,omitempty"`
	Date       string `json:"date,omitempty"`
	ValidUntil string `json:"valid_until,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Language   string `json:"language,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// CompanyInfo identifies the selling company.
type CompanyInfo struct {
	Name      string `json:"name,omitempty"`
	LegalName string `json:"legal_name,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
	Address   string `json:"address,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
}

// ClientInfo identifies the buyer.
type ClientInfo struct {
	Name                 string `json:"name,omitempty"`
	Company              string `json:"company,omitempty"`
	Address              string `json:"address,omitempty"`
	ConstructionLocation string `json:"construction_location,omitempty"`
}

// ProjectInfo holds project-level facts shared by all packages.
type ProjectInfo struct {
	Name                 string  `json:"name,omitempty"`
	Type                 string  `json:"type,omitempty"`
	Description          string  `json:"description,omitempty"`
	TotalAreaM2          float64 `json:"total_area_m2,omitempty"`
	Floors               string  `json:"floors,omitempty"`
	RoofType             string  `json:"roof_type,omitempty"`
	ConstructionTimeDays float64 `json:"construction_time_days,omitempty"`
	ReadinessStage       string  `json:"readiness_stage,omitempty"`
	WeightTons           float64 `json:"weight_tons,omitempty"`
	Region               string  `json:"region,omitempty"`
}

// LocalizedName carries an original-language name plus a translation.
type LocalizedName struct {
	Original   string `json:"original,omitempty"`
	Translated string `json:"translated,omitempty"`
}

// Package is one offered configuration variant.
type Package struct {
	ID            string         `json:"id,omitempty"`
	Name          LocalizedName  `json:"name,omitempty"`
	Price         float64        `json:"price,omitempty"`
	IsRecommended bool           `json:"is_recommended,omitempty"`
	Description   string         `json:"description,omitempty"`
	Specifications *PackageSpec  `json:"specifications,omitempty"`
	IncludedItems []IncludedItem `json:"included_items,omitempty"`
}

// PackageSpec holds structural and thermal characteristics of a package.
type PackageSpec struct {
	WallThicknessMM       float64 `json:"wall_thickness_mm,omitempty"`
	WallUValue            float64 `json:"wall_u_value,omitempty"`
	RoofUValue            float64 `json:"roof_u_value,omitempty"`
	InsulationType        string  `json:"insulation_type,omitempty"`
	InsulationThicknessMM float64 `json:"insulation_thickness_mm,omitempty"`
	EnergyClass           string  `json:"energy_class,omitempty"`
	VaporBarrier          bool    `json:"vapor_barrier,omitempty"`
	WindBarrier           bool    `json:"wind_barrier,omitempty"`
	FireProtection        bool    `json:"fire_protection,omitempty"`
	Impregnation          bool    `json:"impregnation,omitempty"`
	EcoMaterials          bool    `json:"eco_materials,omitempty"`
	BoxCompleteness       string  `json:"box_completeness,omitempty"`
	FactoryPreparation    string  `json:"factory_preparation,omitempty"`
}

// IncludedItem is one line item included in a package.
type IncludedItem struct {
	Category    string `json:"category,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Options groups the per-category option lists plus the dedicated
// membranes/treatment blocks present in newer document formats.
type Options struct {
	ExternalWalls     []WallOption `json:"external_walls,omitempty"`
	InternalWalls     []WallOption `json:"internal_walls,omitempty"`
	RoofStructure     []WallOption `json:"roof_structure,omitempty"`
	RoofCovering      []WallOption `json:"roof_covering,omitempty"`
	FloorStructure    []WallOption `json:"floor_structure,omitempty"`
	Insulation        []WallOption `json:"insulation,omitempty"`
	FinishingExterior []WallOption `json:"finishing_exterior,omitempty"`
	FinishingInterior []WallOption `json:"finishing_interior,omitempty"`
	WindowsDoors      []WallOption `json:"windows_doors,omitempty"`
	Engineering       []WallOption `json:"engineering,omitempty"`
	Membranes         *Membranes   `json:"membranes,omitempty"`
	Treatment         *Treatment   `json:"treatment,omitempty"`
}

// WallOption is a single priced option line.
type WallOption struct {
	Code        string        `json:"code,omitempty"`
	Name        LocalizedName `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Unit        string        `json:"unit,omitempty"`
	Available   *bool         `json:"available,omitempty"`
	Note        string        `json:"note,omitempty"`
}

// Membranes holds the dedicated membrane blocks of newer formats.
type Membranes struct {
	VaporBarrier  *MembraneOption `json:"vapor_barrier,omitempty"`
	WindBarrier   *MembraneOption `json:"wind_barrier,omitempty"`
	Waterproofing *MembraneOption `json:"waterproofing,omitempty"`
}

// MembraneOption describes one membrane line.
type MembraneOption struct {
	Included bool     `json:"included,omitempty"`
	Type     string   `json:"type,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Treatment holds wood treatment blocks.
type Treatment struct {
	Impregnation   *TreatmentOption `json:"impregnation,omitempty"`
	FireProtection *TreatmentOption `json:"fire_protection,omitempty"`
	EcoCertified   bool             `json:"eco_certified,omitempty"`
}

// TreatmentOption describes one treatment line.
type TreatmentOption struct {
	Included bool     `json:"included,omitempty"`
	Type     string   `json:"type,omitempty"`
	Class    string   `json:"class,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// Foundation describes the foundation scope of the offer.
type Foundation struct {
	Type          string   `json:"type,omitempty"`
	Included      bool     `json:"included,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Insulated     bool     `json:"insulated,omitempty"`
	Waterproofing bool     `json:"waterproofing,omitempty"`
	DepthM        float64  `json:"depth_m,omitempty"`
	Material      string   `json:"material,omitempty"`
	Note          string   `json:"note,omitempty"`
}

// Transport is one delivery quote, usually per package.
type Transport struct {
	ForPackage     string  `json:"for_package,omitempty"`
	Price          float64 `json:"price,omitempty"`
	TrucksCount    int     `json:"trucks_count,omitempty"`
	DeliveryMethod string  `json:"delivery_method,omitempty"`
	Note           string  `json:"note,omitempty"`
}

// Assembly describes the on-site assembly offer.
type Assembly struct {
	Available           bool              `json:"available,omitempty"`
	Included            bool              `json:"included,omitempty"`
	Price               *float64          `json:"price,omitempty"`
	Duration            *AssemblyDuration `json:"duration,omitempty"`
	Team                *AssemblyTeam     `json:"team,omitempty"`
	EquipmentRequired   []string          `json:"equipment_required,omitempty"`
	SupervisionAvailable bool             `json:"supervision_available,omitempty"`
	Note                string            `json:"note,omitempty"`
}

// AssemblyDuration is the quoted assembly time range in days.
type AssemblyDuration struct {
	MinDays float64 `json:"min_days,omitempty"`
	MaxDays float64 `json:"max_days,omitempty"`
}

// AssemblyTeam describes the assembly crew.
type AssemblyTeam struct {
	Workers    int  `json:"workers,omitempty"`
	Supervisor bool `json:"supervisor,omitempty"`
}

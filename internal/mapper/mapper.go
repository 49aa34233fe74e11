// Package mapper turns the extraction provider's semi-structured document
// record into the canonical OfferRecord used for comparison. Mapping is a
// pure function of its input: vocabulary tables and keyword patterns only,
// no I/O and no knowledge of the opposing offer.
package mapper

import (
	"strings"

	"go.uber.org/zap"

	"github.com/framehouse/estimate-cli/internal/model"
)

// Fallback records a vocabulary term that had no table entry and was passed
// through in normalized raw form. Not an error; the caller decides whether
// to log it.
type Fallback struct {
	Field string
	Raw   string
}

// Map builds an OfferRecord from an extraction result. Missing sections
// leave the corresponding fields at their zero values. Returned fallbacks
// list every unmapped vocabulary term encountered.
func Map(res model.ExtractionResult) (model.OfferRecord, []Fallback) {
	var rec model.OfferRecord
	var fbs []Fallback

	resolve := func(field, raw string, table map[string]string) string {
		canon, ok := lookupVocab(raw, table)
		if !ok {
			fbs = append(fbs, Fallback{Field: field, Raw: canon})
		}
		return canon
	}

	if res.Document != nil {
		rec.Currency = strings.ToUpper(strings.TrimSpace(res.Document.Currency))
	}

	if p := res.Project; p != nil {
		rec.Area = p.TotalAreaM2
		rec.Floors = strings.TrimSpace(p.Floors)
		rec.RoofType = resolve("roofType", p.RoofType, roofVocab)
		rec.StructureType = model.StructureType(resolve("structureType", p.Type, structureVocab))
		rec.Weight = p.WeightTons * 1000
		rec.Region = strings.TrimSpace(p.Region)
	}

	pkg := primaryPackage(res.Packages)
	var spec *model.PackageSpec
	if pkg != nil {
		rec.Price = pkg.Price
		spec = pkg.Specifications
	}
	if spec != nil {
		rec.Thickness = spec.WallThicknessMM
		rec.InsulationType = model.InsulationType(resolve("insulationType", spec.InsulationType, insulationVocab))
		rec.InsulationThickness = spec.InsulationThicknessMM
		rec.Energy = strings.ToUpper(strings.TrimSpace(spec.EnergyClass))

		rec.VaporBarrier = spec.VaporBarrier
		rec.WindBarrier = spec.WindBarrier
		rec.FireProtection = spec.FireProtection
		rec.Impregnation = spec.Impregnation
		rec.Eco = spec.EcoMaterials

		readiness := resolve("readinessStage", spec.BoxCompleteness, readinessVocab)
		rec.FullInsulation = readiness == "box" || readiness == "turnkey"
	}

	applyOptions(&rec, res.Options)
	applyFoundation(&rec, res.Foundation, resolve)
	applyTransport(&rec, res.Transport)
	applyAssembly(&rec, res.Assembly, res.Project)

	// eco also follows from the material itself.
	if rec.InsulationType == model.InsulationEco {
		rec.Eco = true
	}
	if spec != nil && naturalMaterialPattern.MatchString(spec.InsulationType) {
		rec.Eco = true
	}

	applyFactoryPrep(&rec, spec, resolve)

	// On-site builds depend on the weather; factory-built modules do not.
	rec.WeatherDependent = rec.StructureType != model.StructurePrefab

	return rec, fbs
}

// primaryPackage picks the highest-priced package, treating it as the
// primary offering rather than an add-on.
func primaryPackage(pkgs []model.Package) *model.Package {
	var best *model.Package
	for i := range pkgs {
		if best == nil || pkgs[i].Price > best.Price {
			best = &pkgs[i]
		}
	}
	return best
}

// applyOptions folds the options section in. Explicit membrane and
// treatment blocks set flags directly; free-text option lines are scanned
// against the keyword patterns. Flags only ever turn on here.
func applyOptions(rec *model.OfferRecord, opts *model.Options) {
	if opts == nil {
		return
	}
	if m := opts.Membranes; m != nil {
		if m.VaporBarrier != nil && m.VaporBarrier.Included {
			rec.VaporBarrier = true
		}
		if m.WindBarrier != nil && m.WindBarrier.Included {
			rec.WindBarrier = true
		}
		if m.Waterproofing != nil && m.Waterproofing.Included {
			rec.Waterproofing = true
		}
	}
	if t := opts.Treatment; t != nil {
		if t.Impregnation != nil && t.Impregnation.Included {
			rec.Impregnation = true
		}
		if t.FireProtection != nil && t.FireProtection.Included {
			rec.FireProtection = true
		}
		if t.EcoCertified {
			rec.Eco = true
		}
	}

	for _, group := range [][]model.WallOption{
		opts.ExternalWalls, opts.InternalWalls,
		opts.RoofStructure, opts.RoofCovering, opts.FloorStructure,
		opts.Insulation, opts.FinishingExterior, opts.FinishingInterior,
		opts.WindowsDoors, opts.Engineering,
	} {
		for _, o := range group {
			text := o.Name.Original + " " + o.Name.Translated + " " + o.Description
			if vaporBarrierPattern.MatchString(text) {
				rec.VaporBarrier = true
			}
			if windBarrierPattern.MatchString(text) {
				rec.WindBarrier = true
			}
			if waterproofingPattern.MatchString(text) {
				rec.Waterproofing = true
			}
			if fireProtectionPattern.MatchString(text) {
				rec.FireProtection = true
			}
			if impregnationPattern.MatchString(text) {
				rec.Impregnation = true
			}
			if naturalMaterialPattern.MatchString(text) {
				rec.Eco = true
			}
		}
	}
}

func applyFoundation(rec *model.OfferRecord, f *model.Foundation, resolve func(string, string, map[string]string) string) {
	if f == nil {
		return
	}
	rec.FoundationType = model.FoundationType(resolve("foundationType", f.Type, foundationVocab))
	if f.Insulated {
		rec.FoundationInsulation = true
	}
	if f.Waterproofing {
		rec.Waterproofing = true
	}
}

func applyTransport(rec *model.OfferRecord, ts []model.Transport) {
	if len(ts) == 0 {
		return
	}
	t := ts[0]
	rec.Delivery = t.Price
	rec.DeliveryMethod = strings.TrimSpace(t.DeliveryMethod)
}

// applyAssembly derives installation time and complexity. Extraction never
// yields an "easy" grade; that only enters through manual input.
func applyAssembly(rec *model.OfferRecord, a *model.Assembly, p *model.ProjectInfo) {
	switch {
	case a != nil && a.Duration != nil && a.Duration.MaxDays > 0:
		rec.InstallationTime = a.Duration.MaxDays
	case a != nil && a.Duration != nil && a.Duration.MinDays > 0:
		rec.InstallationTime = a.Duration.MinDays
	case p != nil:
		rec.InstallationTime = p.ConstructionTimeDays
	}

	rec.Complexity = model.ComplexityMedium
	if a != nil {
		for _, eq := range a.EquipmentRequired {
			if craneEquipmentPattern.MatchString(eq) {
				rec.CraneNeeded = true
				rec.Complexity = model.ComplexityHard
				break
			}
		}
	}
}

// applyFactoryPrep resolves the factory-preparation state. A planed,
// calibrated or painted kit is factory-prepared; with no explicit signal
// the flag defaults to true exactly for prefab structures.
func applyFactoryPrep(rec *model.OfferRecord, spec *model.PackageSpec, resolve func(string, string, map[string]string) string) {
	if spec != nil && strings.TrimSpace(spec.FactoryPreparation) != "" {
		switch resolve("factoryPreparation", spec.FactoryPreparation, factoryPrepVocab) {
		case "planed", "calibrated", "painted":
			rec.FactoryPrep = true
		}
		return
	}
	rec.FactoryPrep = rec.StructureType == model.StructurePrefab
}

// LogFallbacks reports unmapped vocabulary terms for one side. The terms
// were already passed through verbatim; this is observability only.
func LogFallbacks(side model.Side, fbs []Fallback) {
	for _, fb := range fbs {
		zap.L().Warn("mapper: vocabulary term passed through unmapped",
			zap.String("side", string(side)),
			zap.String("field", fb.Field),
			zap.String("raw", fb.Raw))
	}
}

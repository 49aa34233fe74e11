// Package loader reads offer records and extraction results from disk.
// JSON files carry the canonical wire formats; XLSX files carry the
// two-column manual input form (key in column A, value in column B).
package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/framehouse/estimate-cli/internal/model"
)

// LoadOffer reads a canonical offer record from a JSON file.
func LoadOffer(path string) (model.OfferRecord, error) {
	var rec model.OfferRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return rec, eris.Wrapf(err, "loader: read offer %s", path)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, eris.Wrapf(err, "loader: parse offer %s", path)
	}

	return rec, nil
}

// LoadExtraction reads a raw extraction result from a JSON file.
func LoadExtraction(path string) (model.ExtractionResult, error) {
	var res model.ExtractionResult

	data, err := os.ReadFile(path)
	if err != nil {
		return res, eris.Wrapf(err, "loader: read extraction %s", path)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, eris.Wrapf(err, "loader: parse extraction %s", path)
	}

	return res, nil
}

// LoadOfferXLSX reads an offer record from a two-column worksheet. The
// first sheet is used; rows with an unrecognized key are skipped and
// returned so the caller can warn about them.
func LoadOfferXLSX(path string) (model.OfferRecord, []string, error) {
	var rec model.OfferRecord

	f, err := xlsx.OpenFile(path)
	if err != nil {
		return rec, nil, eris.Wrapf(err, "loader: open xlsx %s", path)
	}
	if len(f.Sheets) == 0 {
		return rec, nil, eris.Errorf("loader: xlsx %s has no sheets", path)
	}

	var skipped []string
	for _, row := range f.Sheets[0].Rows {
		if len(row.Cells) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row.Cells[0].String()))
		val := strings.TrimSpace(row.Cells[1].String())
		if key == "" || val == "" {
			continue
		}
		if err := setField(&rec, key, val); err != nil {
			if eris.Is(err, errUnknownKey) {
				skipped = append(skipped, key)
				continue
			}
			return rec, nil, eris.Wrapf(err, "loader: xlsx %s row %q", path, key)
		}
	}

	return rec, skipped, nil
}

var errUnknownKey = eris.New("unknown key")

func setField(rec *model.OfferRecord, key, val string) error {
	switch key {
	case "price":
		return setFloat(&rec.Price, val)
	case "currency":
		rec.Currency = strings.ToUpper(val)
	case "delivery":
		return setFloat(&rec.Delivery, val)
	case "area":
		return setFloat(&rec.Area, val)
	case "floors":
		rec.Floors = val
	case "roof_type":
		rec.RoofType = strings.ToLower(val)
	case "structure_type":
		rec.StructureType = model.StructureType(strings.ToLower(val))
	case "foundation_type":
		rec.FoundationType = model.FoundationType(strings.ToLower(val))
	case "delivery_method":
		rec.DeliveryMethod = val
	case "weight":
		return setFloat(&rec.Weight, val)
	case "thickness":
		return setFloat(&rec.Thickness, val)
	case "insulation_type":
		rec.InsulationType = model.InsulationType(strings.ToLower(val))
	case "insulation_thickness":
		return setFloat(&rec.InsulationThickness, val)
	case "energy":
		rec.Energy = strings.ToUpper(val)
	case "vapor_barrier":
		return setBool(&rec.VaporBarrier, val)
	case "wind_barrier":
		return setBool(&rec.WindBarrier, val)
	case "full_insulation":
		return setBool(&rec.FullInsulation, val)
	case "factory_prep":
		return setBool(&rec.FactoryPrep, val)
	case "foundation_insulation":
		return setBool(&rec.FoundationInsulation, val)
	case "waterproofing":
		return setBool(&rec.Waterproofing, val)
	case "weather_dependent":
		return setBool(&rec.WeatherDependent, val)
	case "crane_needed":
		return setBool(&rec.CraneNeeded, val)
	case "impregnation":
		return setBool(&rec.Impregnation, val)
	case "eco":
		return setBool(&rec.Eco, val)
	case "fire_protection":
		return setBool(&rec.FireProtection, val)
	case "installation_time":
		return setFloat(&rec.InstallationTime, val)
	case "complexity":
		rec.Complexity = model.Complexity(strings.ToLower(val))
	case "region":
		rec.Region = val
	default:
		return errUnknownKey
	}
	return nil
}

func setFloat(dst *float64, val string) error {
	// Manual sheets often carry thousand separators.
	cleaned := strings.NewReplacer(" ", "", ",", "", " ", "").Replace(val)
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return eris.Wrapf(err, "parse number %q", val)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, val string) error {
	switch strings.ToLower(val) {
	case "yes", "true", "1", "y", "да", "✓":
		*dst = true
	case "no", "false", "0", "n", "нет", "✗", "":
		*dst = false
	default:
		return eris.Errorf("parse flag %q", val)
	}
	return nil
}

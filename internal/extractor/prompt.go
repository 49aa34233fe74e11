package extractor

// extractionSystemText primes the model for supplier quote parsing. The
// same system prompt is reused for both documents of a comparison and sits
// behind a cache breakpoint.
const extractionSystemText = `You are a construction industry analyst extracting structured data from supplier quotes and commercial offers for prefabricated and timber houses. Documents may be in Italian, English or Russian. Keep original-language values where asked for originals and provide English translations where asked. Return only valid JSON, no markdown fences, no commentary. Use null for data not present in the document; never invent values.`

// extractionInstruction describes the output schema. Field names match the
// wire format the mapper consumes.
const extractionInstruction = `Extract all commercial and technical data from this document. Return a JSON object with this structure (omit sections the document does not contain):

{
  "document": {"type": "quote|invoice|offer", "number": "", "date": "", "valid_until": "", "currency": "EUR|RUB|USD", "language": "it|en|ru", "notes": ""},
  "company": {"name": "", "legal_name": "", "vat_number": "", "address": "", "country": "", "phone": "", "email": "", "website": ""},
  "client": {"name": "", "company": "", "address": "", "construction_location": ""},
  "project": {
    "name": "", "type": "house type as written in the document",
    "description": "", "total_area_m2": 0, "floors": "", "roof_type": "",
    "construction_time_days": 0, "readiness_stage": "", "weight_tons": 0, "region": ""
  },
  "packages": [{
    "id": "", "name": {"original": "", "translated": ""},
    "price": 0, "is_recommended": false, "description": "",
    "specifications": {
      "wall_thickness_mm": 0, "wall_u_value": 0, "roof_u_value": 0,
      "insulation_type": "as written in the document",
      "insulation_thickness_mm": 0, "energy_class": "A++|A+|A|B|C|D|E",
      "vapor_barrier": false, "wind_barrier": false, "fire_protection": false,
      "impregnation": false, "eco_materials": false,
      "box_completeness": "frame|full_box|turnkey|under_finishing",
      "factory_preparation": "raw|planed|calibrated|painted"
    },
    "included_items": [{"category": "", "name": "", "description": ""}]
  }],
  "options": {
    "external_walls": [], "internal_walls": [], "roof_structure": [],
    "roof_covering": [], "floor_structure": [], "insulation": [],
    "finishing_exterior": [], "finishing_interior": [], "windows_doors": [],
    "engineering": [],
    "membranes": {
      "vapor_barrier": {"included": false, "type": "", "brand": "", "price": null},
      "wind_barrier": {"included": false, "type": "", "brand": "", "price": null},
      "waterproofing": {"included": false, "type": "", "brand": "", "price": null}
    },
    "treatment": {
      "impregnation": {"included": false, "type": "", "class": "", "brand": "", "price": null},
      "fire_protection": {"included": false, "type": "", "class": "", "brand": "", "price": null},
      "eco_certified": false
    }
  },
  "foundation": {"type": "", "included": false, "price": null, "insulated": false, "waterproofing": false, "depth_m": 0, "material": "", "note": ""},
  "transport": [{"for_package": "", "price": 0, "trucks_count": 0, "delivery_method": "", "note": ""}],
  "assembly": {
    "available": false, "included": false, "price": null,
    "duration": {"min_days": 0, "max_days": 0},
    "team": {"workers": 0, "supervisor": false},
    "equipment_required": [], "supervision_available": false, "note": ""
  }
}

Each option line has the shape {"code": "", "name": {"original": "", "translated": ""}, "description": "", "price": null, "unit": "", "available": null, "note": ""}. Prices are numbers in the document's own currency with no conversion. List every package variant the document offers.`

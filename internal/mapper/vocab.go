package mapper

import "strings"

// Vocabulary tables translate source-language terms (the extraction
// provider passes document vocabulary through in Italian, English, Russian
// and occasionally the provider's own snake_case labels) onto canonical
// values. Lookup is case-insensitive; underscores count as spaces.

var insulationVocab = map[string]string{
	"basalt":                           "basalt",
	"basalt wool":                      "basalt",
	"stone wool":                       "basalt",
	"rock wool":                        "basalt",
	"lana di roccia":                   "basalt",
	"lana basaltica":                   "basalt",
	"базальтовая вата":                 "basalt",
	"каменная вата":                    "basalt",
	"mineral":                          "mineral",
	"mineral wool":                     "mineral",
	"lana minerale":                    "mineral",
	"glass wool":                       "mineral",
	"lana di vetro":                    "mineral",
	"минвата":                          "mineral",
	"минеральная вата":                 "mineral",
	"стекловата":                       "mineral",
	"eps":                              "eps",
	"polystyrene":                      "eps",
	"expanded polystyrene":             "eps",
	"polistirolo":                      "eps",
	"polistirene espanso":              "eps",
	"пенопласт":                        "eps",
	"пенополистирол":                   "eps",
	"xps":                              "xps",
	"extruded polystyrene":             "xps",
	"polistirene estruso":              "xps",
	"экструзия":                        "xps",
	"экструдированный пенополистирол":  "xps",
	"pir":                              "pir",
	"pur":                              "pir",
	"puf":                              "pir",
	"poliuretano":                      "pir",
	"полиуретан":                       "pir",
	"ппу":                              "pir",
	"eco":                              "eco",
	"eco wool":                         "eco",
	"cellulose":                        "eco",
	"cellulosa":                        "eco",
	"эковата":                          "eco",
	"wood fiber":                       "eco",
	"fibra di legno":                   "eco",
	"древесное волокно":                "eco",
	"hemp":                             "eco",
	"canapa":                           "eco",
}

var structureVocab = map[string]string{
	"prefab":                       "prefab",
	"prefab house":                 "prefab",
	"prefabricated":                "prefab",
	"modular":                      "prefab",
	"casa prefabbricata":           "prefab",
	"prefabbricato":                "prefab",
	"модульный":                    "prefab",
	"модульный дом":                "prefab",
	"clt":                          "clt",
	"xlam":                         "clt",
	"x-lam":                        "clt",
	"cross laminated timber":       "clt",
	"legno lamellare incrociato":   "clt",
	"перекрестно-клееная древесина": "clt",
	"frame":                        "frame",
	"timber frame":                 "frame",
	"wood frame":                   "frame",
	"casa in legno":                "frame",
	"struttura a telaio":           "frame",
	"telaio in legno":              "frame",
	"каркас":                       "frame",
	"каркасный":                    "frame",
	"каркасный дом":                "frame",
	"aerated":                      "aerated",
	"aerated concrete":             "aerated",
	"aac":                          "aerated",
	"calcestruzzo aerato":          "aerated",
	"gasbeton":                     "aerated",
	"газобетон":                    "aerated",
	"газоблок":                     "aerated",
	"brick":                        "brick",
	"masonry":                      "brick",
	"mattoni":                      "brick",
	"muratura":                     "brick",
	"кирпич":                       "brick",
	"кирпичный":                    "brick",
	"concrete":                     "concrete",
	"reinforced concrete":          "concrete",
	"cemento armato":               "concrete",
	"calcestruzzo":                 "concrete",
	"бетон":                        "concrete",
	"железобетон":                  "concrete",
	"монолит":                      "concrete",
}

var roofVocab = map[string]string{
	"gable":        "gable",
	"a due falde":  "gable",
	"due falde":    "gable",
	"двускатная":   "gable",
	"двухскатная":  "gable",
	"hip":          "hip",
	"hipped":       "hip",
	"padiglione":   "hip",
	"a padiglione": "hip",
	"вальмовая":    "hip",
	"flat":         "flat",
	"piana":        "flat",
	"tetto piano":  "flat",
	"плоская":      "flat",
	"mansard":      "mansard",
	"mansarda":     "mansard",
	"мансардная":   "mansard",
}

var foundationVocab = map[string]string{
	"slab":                   "slab",
	"raft":                   "slab",
	"platea":                 "slab",
	"platea di fondazione":   "slab",
	"плита":                  "slab",
	"плитный":                "slab",
	"монолитная плита":       "slab",
	"ушп":                    "slab",
	"strip":                  "strip",
	"strip foundation":       "strip",
	"fondazione continua":    "strip",
	"trave rovescia":         "strip",
	"ленточный":              "strip",
	"лента":                  "strip",
	"pile":                   "pile",
	"pali":                   "pile",
	"su pali":                "pile",
	"свайный":                "pile",
	"сваи":                   "pile",
	"буронабивные сваи":      "pile",
	"screw":                  "screw",
	"screw pile":             "screw",
	"pali a vite":            "screw",
	"винтовые сваи":          "screw",
	"винтовой":               "screw",
	"basement":               "basement",
	"seminterrato":           "basement",
	"interrato":              "basement",
	"цокольный":              "basement",
	"подвал":                 "basement",
	"с подвалом":             "basement",
}

var readinessVocab = map[string]string{
	"frame":              "frame",
	"frame only":         "frame",
	"solo struttura":     "frame",
	"каркас":             "frame",
	"только каркас":      "frame",
	"box":                "box",
	"walls roof":         "box",
	"full box":           "box",
	"grezzo":             "box",
	"al grezzo":          "box",
	"коробка":            "box",
	"теплый контур":      "box",
	"тёплый контур":      "box",
	"turnkey":            "turnkey",
	"chiavi in mano":     "turnkey",
	"под ключ":           "turnkey",
	"under finishing":    "under_finishing",
	"под отделку":        "under_finishing",
	"под чистовую":       "under_finishing",
}

var factoryPrepVocab = map[string]string{
	"raw":            "raw",
	"grezzo":         "raw",
	"non trattato":   "raw",
	"необработанный": "raw",
	"planed":         "planed",
	"piallato":       "planed",
	"строганный":     "planed",
	"строганый":      "planed",
	"calibrated":     "calibrated",
	"calibrato":      "calibrated",
	"калиброванный":  "calibrated",
	"painted":        "painted",
	"verniciato":     "painted",
	"окрашенный":     "painted",
	"покрашенный":    "painted",
}

// normalizeTerm lowercases, trims and collapses separators so lookups
// tolerate the provider's snake_case labels and stray whitespace.
func normalizeTerm(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// lookupVocab resolves raw against a vocabulary table. Unknown terms fall
// back to their normalized form so downstream display still has something
// to show; ok is false so the caller can record the fallback.
func lookupVocab(raw string, table map[string]string) (string, bool) {
	key := normalizeTerm(raw)
	if key == "" {
		return "", true
	}
	if canon, ok := table[key]; ok {
		return canon, true
	}
	return key, false
}

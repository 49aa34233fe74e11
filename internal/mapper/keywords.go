package mapper

import "regexp"

// Keyword patterns derive boolean flags from free-text option names when the
// extraction carries no explicit flag. Each pattern covers the Italian,
// English and Russian phrasings seen in supplier documents.
var (
	vaporBarrierPattern    = regexp.MustCompile(`(?i)vapou?r\s*barrier|barriera\s+al\s+vapore|freno\s+al\s+vapore|пароизоляц`)
	windBarrierPattern     = regexp.MustCompile(`(?i)wind\s*(barrier|protection)|barriera\s+(al\s+)?vento|antivento|ветрозащит`)
	waterproofingPattern   = regexp.MustCompile(`(?i)waterproof|impermeabilizz|guaina|гидроизоляц`)
	fireProtectionPattern  = regexp.MustCompile(`(?i)fire\s*(protect|retard|proof)|ignifug|antincendio|огнезащит|огнебиозащит`)
	impregnationPattern    = regexp.MustCompile(`(?i)impregnat|impregnante|antiseptic|antisettico|антисептик|пропитк`)
	naturalMaterialPattern = regexp.MustCompile(`(?i)natural|naturale|ecolog|eco-?friendly|sostenibil|натуральн|эколог`)
	craneEquipmentPattern  = regexp.MustCompile(`(?i)crane|lifting|autogr[uù]|\bgru\b|кран|манипулятор|подъемн|подъёмн`)
)

// Package complaints classifies negative review feedback into a fixed closed
// vocabulary of eight complaint categories.
package complaints

// Category is one of the eight fixed complaint tags. The vocabulary is never
// extended at runtime; every classifier strategy maps its own labels onto
// exactly these keys.
type Category string

const (
	MaterialQuality  Category = "material_quality"
	SoundQuality     Category = "sound_quality"
	BatteryLife      Category = "battery_life"
	ComfortFit       Category = "comfort_fit"
	Connectivity     Category = "connectivity"
	ShippingDelivery Category = "shipping_delivery"
	PriceValue       Category = "price_value"
	CustomerService  Category = "customer_service"
)

// vocabulary is the fixed enumeration order. Tie-breaking in top-N extraction
// and the heuristic first-match rule both depend on this order.
var vocabulary = []Category{
	MaterialQuality,
	SoundQuality,
	BatteryLife,
	ComfortFit,
	Connectivity,
	ShippingDelivery,
	PriceValue,
	CustomerService,
}

// Vocabulary returns the categories in fixed enumeration order.
func Vocabulary() []Category {
	out := make([]Category, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// zeroShotLabels are the candidate-label description strings scored by the
// zero-shot strategy. Category lookup from a scored label goes through
// categoryForLabel, so the wording here is part of the model contract.
var zeroShotLabels = map[Category]string{
	MaterialQuality:  "Bad material quality, cheap, flimsy, broke, damaged",
	SoundQuality:     "Poor sound, muffled, distortion, static, bad audio",
	BatteryLife:      "Short battery life, battery dies quickly, charging issues",
	ComfortFit:       "Uncomfortable, too tight, too loose, painful to wear",
	Connectivity:     "Connection issues, disconnects, lag, pairing problems",
	ShippingDelivery: "Late delivery, damaged packaging, lost item",
	PriceValue:       "Too expensive, overpriced, not worth the money",
	CustomerService:  "Bad customer service, unhelpful, rude, no response",
}

// summaries are the human-readable category descriptions surfaced by the API.
var summaries = map[Category]string{
	MaterialQuality:  "Issues related to the physical quality and durability of materials",
	SoundQuality:     "Issues related to audio performance and sound characteristics",
	BatteryLife:      "Issues related to battery performance and charging",
	ComfortFit:       "Issues related to physical comfort and fit",
	Connectivity:     "Issues related to wireless connectivity and pairing",
	ShippingDelivery: "Issues related to shipping, delivery, and packaging",
	PriceValue:       "Issues related to pricing and value for money",
	CustomerService:  "Issues related to customer service and support",
}

// LabelFor returns the zero-shot candidate label for a category.
func LabelFor(cat Category) string {
	return zeroShotLabels[cat]
}

// SummaryFor returns the human-readable description for a category.
func SummaryFor(cat Category) string {
	return summaries[cat]
}

// CandidateLabels returns the zero-shot labels in vocabulary order.
func CandidateLabels() []string {
	labels := make([]string, len(vocabulary))
	for i, cat := range vocabulary {
		labels[i] = zeroShotLabels[cat]
	}
	return labels
}

// categoryForLabel maps a scored candidate label back to its category key.
func categoryForLabel(label string) (Category, bool) {
	for cat, l := range zeroShotLabels {
		if l == label {
			return cat, true
		}
	}
	return "", false
}

// EmptyCounts returns a count map with every category present at zero.
func EmptyCounts() map[Category]int {
	counts := make(map[Category]int, len(vocabulary))
	for _, cat := range vocabulary {
		counts[cat] = 0
	}
	return counts
}

// Package footprint estimates the carbon footprint of a packaging unit from
// its material, weight, and transport distance using fixed emission factors.
package footprint

const (
	// TransportFactor converts gram-kilometers of transport into kg CO2e.
	// Derived from 0.1 kg CO2e per ton-km, converted to a per-gram-km
	// constant (0.1 / 1000 = 0.0001).
	TransportFactor = 0.1 / 1000

	// OtherFactor is the fallback emission factor (kg CO2e per kg) applied
	// to any material not present in the factor table.
	OtherFactor = 2.0
)

// materialFactors maps a material name to its emission factor in
// kg CO2e per kg of material.
var materialFactors = map[string]float64{
	"Plastic":     2.5,
	"Glass":       1.2,
	"Aluminum":    10.0,
	"Paper":       1.0,
	"Bioplastic":  1.5,
	"Compostable": 1.2,
	"Other":       OtherFactor,
}

// Spec describes one packaging unit. Weight is in grams, transport distance
// in kilometers. Inputs are not range-checked; negative values propagate
// algebraically into the result.
type Spec struct {
	Material            string  `json:"material"`
	WeightGrams         float64 `json:"weightGrams"`
	TransportDistanceKm float64 `json:"transportDistanceKm"`
}

// Breakdown is a three-part emission estimate in kg CO2e.
// TotalEmissionsKg is always the exact sum of the other two fields.
type Breakdown struct {
	MaterialEmissionsKg  float64 `json:"materialEmissionsKg"`
	TransportEmissionsKg float64 `json:"transportEmissionsKg"`
	TotalEmissionsKg     float64 `json:"totalEmissionsKg"`
}

// MaterialFactor resolves the emission factor for a material. The lookup is
// total: unknown materials resolve to OtherFactor, never an error.
func MaterialFactor(material string) float64 {
	if f, ok := materialFactors[material]; ok {
		return f
	}
	return OtherFactor
}

// Estimate computes the emission breakdown for a packaging spec.
//
// The calculation:
//  1. Material emissions (kg) = (weight grams / 1000) × material factor
//  2. Transport emissions (kg) = weight grams × distance km × TransportFactor
//  3. Total = material + transport
//
// Estimate is pure and total over all inputs.
func Estimate(spec Spec) Breakdown {
	factor := MaterialFactor(spec.Material)
	material := (spec.WeightGrams / 1000) * factor
	transport := spec.WeightGrams * spec.TransportDistanceKm * TransportFactor
	return Breakdown{
		MaterialEmissionsKg:  material,
		TransportEmissionsKg: transport,
		TotalEmissionsKg:     material + transport,
	}
}

// Materials lists the materials present in the factor table.
func Materials() []string {
	out := make([]string, 0, len(materialFactors))
	for name := range materialFactors {
		out = append(out, name)
	}
	return out
}

// Package values defines the closed set of scalar value types that can be
// stored in Subject properties and used as Pattern payloads.
//
// Value is a sealed interface: the nine concrete kinds defined here are the
// only implementations. Standard kinds are String, Integer, Decimal, Boolean,
// and Symbol; extended kinds are Array, Map, Range, and Measurement.
//
// # Construction
//
//	v := values.String("Alice")
//	age := values.Integer(30)
//	weight := values.Measurement{Magnitude: 5, Unit: "kg"}
//
// # Extraction
//
// Typed accessors fail with a *ConversionError rather than silently coercing:
//
//	s, err := values.AsString(v)
//	if err != nil {
//	    // v is not a string or symbol
//	}
package values

package parser

// Classify tags each extracted field as Named or Positional, keeping
// declaration order. A field with a usable label is Named. Embedded fields
// and blank (_) fields lack one and become Positional; embedded fields keep
// their implicit name as accessor.
func Classify(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		switch f.Label {
		case "":
			f.Kind = Positional
			f.Accessor = embeddedName(f.Expr)
		case "_":
			f.Kind = Positional
			f.Label = ""
			f.Accessor = ""
		default:
			f.Kind = Named
			f.Accessor = f.Label
		}
		out[i] = f
	}
	return out
}

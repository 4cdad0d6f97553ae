// Package field reads named, dot-separated fields out of loosely shaped
// records and turns those reads into the selector functions package
// collections expects.
//
// A [Record] is the map[string]any that encoding/json produces for a JSON
// object. Fields may be nested:
//
//	r := field.Record{
//	    "user":  map[string]any{"name": "Ada", "address": map[string]any{"city": "London"}},
//	    "score": 42.0,
//	}
//	field.Get(r, "user.address.city") // "London", true
//
// The selector constructors bind a path once and are then passed to the
// query operators:
//
//	records.OrderBy(field.Value("user.name"), collections.Ascending)
//	total := records.Sum(field.Number("score"))
//	hits := records.Where(field.Equals("user.address.city", "London"))
//
// Missing fields and values that are not numbers are reported as absent, so
// reductions skip those records rather than counting them as zero.
package field

// Package maybe provides an optional-value type: a value that is either
// present (Something) or absent (Nothing).
//
// Highlights:
// - Something/Nothing: construct Maybe[T]
// - Get/GetOr/Unwrap: extract the held value
// - Map/MapOr/MapOrElse: transform the held value
// - From/FromPtr/ToPtr: bridge comma-ok pairs and nilable pointers
//
// Maybe is the projection target of result.Result's Ok and Err methods.
package maybe

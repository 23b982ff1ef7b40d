// Package zone models the static partition of grid rows into named
// capacity zones, each zone accepting one or more footprint size classes.
//
// What:
//
//   - Zone: a contiguous inclusive row range [RowStart, RowEnd] tagged with
//     an identifier, a display name, and the footprint sizes it accepts.
//   - Map: an ordered, immutable collection of zones answering two
//     questions: which zone owns a given size class (ZoneForSize), and does
//     a row belong to a given zone (RowInZone).
//   - Config: the process-wide static configuration — grid dimensions,
//     agent origin, and the zone table — loadable from YAML and validated
//     once at startup. Constructors receive it explicitly; nothing in the
//     engine reads ambient global state.
//
// Semantics:
//
//   - Zones may overlap; membership is tested per zone independently and
//     the first declared match wins, matching the legacy iteration-order
//     behavior. The reference configuration happens to be disjoint.
//   - Row ranges are inclusive on both ends, mirroring the legacy
//     'range': (start, end) tables.
//   - A size class maps to at most one zone; duplicate mappings are
//     rejected at construction because they would make allocation
//     ambiguous.
//
// Errors:
//
//   - ErrNoZones, ErrBadRowRange, ErrBadSizeClass, ErrDuplicateSize,
//     ErrDuplicateZone for Map construction.
//   - ErrBadConfig (wrapping the specific violation) for Config validation.
package zone

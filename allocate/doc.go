// Package allocate finds a usable anchor cell for a box footprint on an
// occupancy grid. Two interchangeable strategies exist behind one
// interface, because the warehouse evolved both and different deployments
// use different ones:
//
//   - NearestBFS: unconstrained nearest-by-expansion. Breadth-first ring
//     expansion out from an origin cell (direction order up, down, left,
//     right), returning the first visited cell whose footprint is free.
//     BFS visitation order approximates closest-first under 4-directional
//     movement and needs no heap since all edge costs are uniform.
//
//   - ZoneScan: zone-constrained row-major scan. The footprint size class
//     selects its capacity zone; rows RowStart..RowEnd are scanned top to
//     bottom, columns left to right, and an anchor qualifies only if the
//     whole footprint stays inside the zone's row range and is unoccupied.
//     A footprint that would cross a zone boundary is rejected even when
//     the neighboring rows are free.
//
// Both expose FindSlot(grid, size, origin) and both only read the grid —
// the caller applies the placement afterwards.
//
// Errors:
//
//   - ErrNoSlot: the strategy exhausted its search without a fit. This is
//     a normal, expected outcome under high occupancy, not a fault.
//   - ErrNoZoneForSize: ZoneScan has no zone configured for the size class.
//   - ErrNilGrid, ErrNilZoneMap, ErrBadFootprint, ErrOriginOutOfBounds:
//     caller input violations.
//
// Complexity: NearestBFS O(V·size²) worst case over V = rows×cols visited
// cells; ZoneScan O(zoneRows×cols×size²) worst case.
package allocate

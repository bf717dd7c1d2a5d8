// Package fuzzy evaluates piecewise-linear fuzzy membership functions.
//
// What:
//
//   - Set is a named, immutable membership curve given by ordered
//     (x, degree) breakpoints: triangular, trapezoidal, any open
//     polyline, or a two-point ramp.
//   - Set.Membership maps a scalar to a degree in [0,1].
//   - MembershipVector and Catalog.Evaluate score one scalar against an
//     ordered family of sets and return a Result in catalog order.
//
// Boundaries:
//
//   - Support is open: a value at or beyond the first or last breakpoint
//     takes that breakpoint's degree, which is 0 for every set with three
//     or more points. Ramps hold their edge degree (a shoulder).
//   - Segments are half-open [x_i, x_{i+1}); a value equal to a breakpoint
//     returns that breakpoint's degree exactly, so a triangular peak is 1.
//   - NaN evaluates to 0.
//
// Complexity:
//
//   - Membership: O(P) for P breakpoints, no allocation.
//   - Evaluate:   O(S×P) for S sets, one allocation for the result.
//
// Errors:
//
//   - *InvalidSetError wraps ErrInvalidSet and one reason sentinel
//     (ErrTooFewPoints, ErrNotIncreasing, ErrDegreeRange, ...).
//     Sets are validated once at construction; evaluation never fails.
//
// Sets and catalogs are read-only after construction and safe for
// concurrent use.
package fuzzy

// ==============================================================================================
// FILE: object/compare.go
// ==============================================================================================
// PURPOSE: Equal and Less, Pyrite's only two comparison primitives (the four other operators,
//          !=, <=, >=, >, are derived from these two). Each tries String, then Number, then Bool,
//          in that fixed order; any pairing that does not land on a shared variant at one of those
//          three tries is simply not-equal or not-less, never an error. Cross-kind comparisons
//          (Number vs String, anything vs a ClassInstance or Class) fall through to that default
//          rather than raising.
// ==============================================================================================

package object

// Equal reports whether lhs and rhs hold equal values, trying String,
// then Number, then Bool. Any other pairing (including None, ClassRef,
// or ClassInstance on either side) is simply unequal.
func Equal(lhs, rhs Holder) bool {
	if ls, ok := TryAs[String](lhs); ok {
		if rs, ok := TryAs[String](rhs); ok {
			return ls.V == rs.V
		}
		return false
	}
	if ln, ok := TryAs[Number](lhs); ok {
		if rn, ok := TryAs[Number](rhs); ok {
			return ln.V == rn.V
		}
		return false
	}
	if lb, ok := TryAs[Bool](lhs); ok {
		if rb, ok := TryAs[Bool](rhs); ok {
			return lb.V == rb.V
		}
		return false
	}
	return false
}

// Less reports whether lhs orders before rhs, trying String, then
// Number, then Bool (False < True), in that order. Any pairing that
// does not share one of those three variants is reported as not-less.
func Less(lhs, rhs Holder) bool {
	if ls, ok := TryAs[String](lhs); ok {
		if rs, ok := TryAs[String](rhs); ok {
			return ls.V < rs.V
		}
		return false
	}
	if ln, ok := TryAs[Number](lhs); ok {
		if rn, ok := TryAs[Number](rhs); ok {
			return ln.V < rn.V
		}
		return false
	}
	if lb, ok := TryAs[Bool](lhs); ok {
		if rb, ok := TryAs[Bool](rhs); ok {
			return !lb.V && rb.V
		}
		return false
	}
	return false
}

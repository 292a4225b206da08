package txbuilder

import "math/big"

// maxU128 is 2^128 - 1, the ceiling a cheque token-amount sum must not
// cross.
var maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// u128FromLE decodes a 16-byte little-endian u128 amount.
func u128FromLE(data []byte) *big.Int {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// u128ToLE encodes v as a 16-byte little-endian u128. It returns an
// error if v does not fit in 128 bits.
func u128ToLE(v *big.Int) ([16]byte, error) {
	var out [16]byte
	if v.Sign() < 0 || v.Cmp(maxU128) > 0 {
		return out, NewInvalidParameterError("u128 amount overflow")
	}
	be := v.Bytes()
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out, nil
}

// addU64Checked adds b to a, failing instead of wrapping on overflow.
func addU64Checked(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, NewInvalidParameterError("u64 capacity overflow")
	}
	return sum, nil
}

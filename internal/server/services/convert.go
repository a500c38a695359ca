package services

import (
	"math/bits"

	"github.com/haeli05/mintvault/internal/common"
)

// PriceScale normalizes the fixed-point price to the asset mint's six
// decimal places. A price of 1_000_000 is a 1:1 exchange rate.
const PriceScale = 1_000_000

// mulDiv computes a*b/den in full 128-bit precision with floor truncation.
// Overflow of the 64-bit result or a zero divisor is a defect, not a
// caller-recoverable condition.
func mulDiv(a, b, den uint64) (uint64, error) {
	if den == 0 {
		return 0, common.ErrorArithmeticOverflow
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= den {
		return 0, common.ErrorArithmeticOverflow
	}
	quo, _ := bits.Div64(hi, lo, den)
	return quo, nil
}

// collateralToAsset converts a collateral amount into the asset units minted
// for it. Truncation always favors the vault, never the depositor.
func collateralToAsset(amount, price uint64) (uint64, error) {
	return mulDiv(amount, PriceScale, price)
}

// assetToCollateral converts an asset amount into the collateral owed for it.
func assetToCollateral(amount, price uint64) (uint64, error) {
	return mulDiv(amount, price, PriceScale)
}

func addTotal(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, common.ErrorArithmeticOverflow
	}
	return sum, nil
}

func subTotal(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, common.ErrorArithmeticOverflow
	}
	return diff, nil
}

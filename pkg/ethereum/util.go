package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// WeiToEther converts a wei amount into ether
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -etherDecimals)
}

package ethereum

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment describes a mined contract creation
type Deployment struct {
	Contract    string         `json:"contract"`
	Network     string         `json:"network"`
	Address     common.Address `json:"address"`
	TxHash      common.Hash    `json:"tx_hash"`
	BlockNumber uint64         `json:"block_number"`
	DeployedAt  time.Time      `json:"deployed_at"`
}

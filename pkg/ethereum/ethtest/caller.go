// Package ethtest provides an in-memory Generator contract backend for tests.
package ethtest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/generator-dapp/pkg/ethereum/contracts"
)

// Record is the on-chain triple returned by getHash.
type Record struct {
	SolutionHash  string
	AlgorithmHash string
	HashMethod    string
}

// GeneratorCaller implements bind.ContractCaller by answering getHash calls
// from an in-memory table. Unknown ids return an empty record, like the contract.
type GeneratorCaller struct {
	mu      sync.Mutex
	records map[string]Record
	calls   []ethereum.CallMsg

	// Err, when set, is returned from every call.
	Err error
	// Code is returned from CodeAt. Defaults to a non-empty stub.
	Code []byte

	parsed *abi.ABI
}

// NewGeneratorCaller creates an empty fake.
func NewGeneratorCaller() *GeneratorCaller {
	parsed, err := contracts.GeneratorMetaData.GetAbi()
	if err != nil {
		panic(fmt.Sprintf("parse generator abi: %v", err))
	}
	return &GeneratorCaller{
		records: make(map[string]Record),
		Code:    []byte{0x60, 0x80},
		parsed:  parsed,
	}
}

// Set stores a record for id.
func (g *GeneratorCaller) Set(id *big.Int, r Record) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.records[id.String()] = r
}

// Calls returns a copy of the received call messages.
func (g *GeneratorCaller) Calls() []ethereum.CallMsg {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]ethereum.CallMsg, len(g.calls))
	copy(out, g.calls)
	return out
}

// CodeAt implements bind.ContractCaller.
func (g *GeneratorCaller) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	return g.Code, nil
}

// CallContract implements bind.ContractCaller.
func (g *GeneratorCaller) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)

	if g.Err != nil {
		return nil, g.Err
	}

	method := g.parsed.Methods["getHash"]
	if len(call.Data) < 4 || !bytes.Equal(call.Data[:4], method.ID) {
		return nil, errors.New("execution reverted: unknown selector")
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, fmt.Errorf("unpack getHash input: %w", err)
	}
	id, ok := args[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected getHash argument type")
	}

	r := g.records[id.String()]
	return method.Outputs.Pack(r.SolutionHash, r.AlgorithmHash, r.HashMethod)
}

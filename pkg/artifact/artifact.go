// Package artifact reads and writes compiled contract artifacts in the
// Hardhat layout: <artifacts>/<sourceName>/<ContractName>.json.
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Format is the artifact format marker.
const Format = "hh-sol-artifact-1"

// ErrNotFound is returned when no artifact matches a contract name.
var ErrNotFound = errors.New("artifact not found")

// Artifact is a compiled contract.
type Artifact struct {
	Format                 string          `json:"_format"`
	ContractName           string          `json:"contractName"`
	SourceName             string          `json:"sourceName"`
	ABI                    json.RawMessage `json:"abi"`
	Bytecode               string          `json:"bytecode"`
	DeployedBytecode       string          `json:"deployedBytecode"`
	LinkReferences         json.RawMessage `json:"linkReferences"`
	DeployedLinkReferences json.RawMessage `json:"deployedLinkReferences"`
}

// ParsedABI decodes the artifact's interface description.
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi of %s: %w", a.ContractName, err)
	}
	return parsed, nil
}

// CreationCode returns the deployable bytecode.
func (a *Artifact) CreationCode() ([]byte, error) {
	code := common.FromHex(a.Bytecode)
	if len(code) == 0 {
		return nil, fmt.Errorf("%s has no bytecode (abstract contract or interface?)", a.ContractName)
	}
	return code, nil
}

// Path returns where the artifact lives under dir.
func (a *Artifact) Path(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(a.SourceName), a.ContractName+".json")
}

// Write stores the artifact under dir, creating directories as needed.
func Write(dir string, a *Artifact) (string, error) {
	if a.Format == "" {
		a.Format = Format
	}
	if len(a.LinkReferences) == 0 {
		a.LinkReferences = json.RawMessage("{}")
	}
	if len(a.DeployedLinkReferences) == 0 {
		a.DeployedLinkReferences = json.RawMessage("{}")
	}

	path := a.Path(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode artifact %s: %w", a.ContractName, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}

// ReadFile parses a single artifact file.
func ReadFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact %s: %w", path, err)
	}
	if a.Format != Format {
		return nil, fmt.Errorf("artifact %s has unsupported format %q", path, a.Format)
	}
	return &a, nil
}

// Load finds the artifact for contract name under dir. Names may be
// qualified ("contracts/Generator.sol:Generator") to disambiguate.
func Load(dir, name string) (*Artifact, error) {
	source, contract := "", name
	if i := strings.LastIndex(name, ":"); i >= 0 {
		source, contract = name[:i], name[i+1:]
	}

	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != contract+".json" {
			return nil
		}
		if source != "" && filepath.ToSlash(filepath.Dir(path)) != filepath.ToSlash(filepath.Join(dir, source)) {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("scan artifacts: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s (run compile first)", ErrNotFound, name)
	case 1:
		return ReadFile(matches[0])
	default:
		return nil, fmt.Errorf("multiple artifacts named %s, use a fully qualified name: %s",
			contract, strings.Join(matches, ", "))
	}
}

// Package solc compiles Solidity sources with an external solc binary and
// writes the results as Hardhat-style artifacts.
package solc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/compiler"
	"go.uber.org/zap"

	"github.com/chainsafe/generator-dapp/pkg/artifact"
	"github.com/chainsafe/generator-dapp/pkg/config"
)

var versionRe = regexp.MustCompile(`Version: (\d+\.\d+\.\d+)`)

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Compiler compiles every source under the configured directory.
type Compiler struct {
	cfg    config.SolidityConfig
	run    Runner
	logger *zap.Logger
}

// NewCompiler creates a Compiler. A nil runner executes the real binary.
func NewCompiler(cfg config.SolidityConfig, run Runner, logger *zap.Logger) *Compiler {
	if run == nil {
		run = execRunner
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{cfg: cfg, run: run, logger: logger}
}

// Version returns the semantic version reported by the compiler binary.
func (c *Compiler) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, c.cfg.Compiler, "--version")
	if err != nil {
		return "", fmt.Errorf("query compiler version: %w", err)
	}
	m := versionRe.FindSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("unrecognised compiler version output: %q", strings.TrimSpace(string(out)))
	}
	return string(m[1]), nil
}

// Sources lists .sol files under the sources directory, relative to it.
func (c *Compiler) Sources() ([]string, error) {
	var files []string
	err := filepath.WalkDir(c.cfg.Sources, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".sol") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan sources %s: %w", c.cfg.Sources, err)
	}
	sort.Strings(files)
	return files, nil
}

// Compile checks the compiler version, compiles all sources and writes one
// artifact per contract. It returns the written artifact paths.
func (c *Compiler) Compile(ctx context.Context) ([]string, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	if version != c.cfg.Version {
		return nil, fmt.Errorf("compiler %s is version %s, config requires %s", c.cfg.Compiler, version, c.cfg.Version)
	}

	sources, err := c.Sources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		c.logger.Warn("No Solidity sources found", zap.String("dir", c.cfg.Sources))
		return nil, nil
	}

	args := []string{"--combined-json", "abi,bin,bin-runtime"}
	if c.cfg.Optimize {
		args = append(args, "--optimize", "--optimize-runs", strconv.Itoa(c.cfg.Runs))
	}
	args = append(args, sources...)

	out, err := c.run(ctx, c.cfg.Compiler, args...)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiled, err := compiler.ParseCombinedJSON(out, "", "", version, strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("parse compiler output: %w", err)
	}

	names := make([]string, 0, len(compiled))
	for name := range compiled {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		a, err := toArtifact(name, compiled[name])
		if err != nil {
			return nil, err
		}
		path, err := artifact.Write(c.cfg.Artifacts, a)
		if err != nil {
			return nil, err
		}
		c.logger.Info("Compiled contract",
			zap.String("contract", a.ContractName),
			zap.String("source", a.SourceName),
			zap.String("artifact", path))
		paths = append(paths, path)
	}
	return paths, nil
}

func toArtifact(qualified string, contract *compiler.Contract) (*artifact.Artifact, error) {
	i := strings.LastIndex(qualified, ":")
	if i < 0 {
		return nil, fmt.Errorf("unexpected contract key %q", qualified)
	}
	abiJSON, err := json.Marshal(contract.Info.AbiDefinition)
	if err != nil {
		return nil, fmt.Errorf("encode abi of %s: %w", qualified, err)
	}
	return &artifact.Artifact{
		Format:           artifact.Format,
		ContractName:     qualified[i+1:],
		SourceName:       filepath.ToSlash(qualified[:i]),
		ABI:              abiJSON,
		Bytecode:         hexPrefixed(contract.Code),
		DeployedBytecode: hexPrefixed(contract.RuntimeCode),
	}, nil
}

func hexPrefixed(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}

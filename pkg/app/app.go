// Package app defines the runtime pieces shared by the cmd/generator
// subcommands: environment loading, chain connection and runnable components.
package app

import "context"

// Runner represents a runnable application component.
type Runner interface {
	Run(ctx context.Context) error
}

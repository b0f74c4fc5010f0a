// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command crmathgen emits Go source tables of correctly rounded square roots.
//
// Usage:
//
//	crmathgen table -type float64 -modes nearest,upward -start 1 -count 64 -out sqrt_table.go
//
// Or via go:generate:
//
//	//go:generate crmathgen table -type float32 -pkg mytables -out $GOFILE
//
// Every entry is computed with the generic digit-by-digit kernel, so the
// tables do not depend on the host FPU or its rounding state.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-crmath/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string
	root := &cobra.Command{
		Use:          "crmathgen",
		Short:        "Generate correctly rounded math tables",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetupWriter(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console or json)")
	root.AddCommand(newTableCmd())
	return root
}

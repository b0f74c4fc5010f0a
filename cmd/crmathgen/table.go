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

package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-crmath"
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/internal/logger"
)

// TableConfig describes one generated file.
type TableConfig struct {
	Type  string
	Modes []string
	Start int64
	Count int
	Name  string
	Pkg   string
	Out   string
}

// tableType renders the rows of a table for one Go element type.
type tableType struct {
	goType string
	rows   func(inputs []int64, mode fenv.RoundingMode) []string
}

var tableTypes = map[string]tableType{
	"float32": {"float32", func(in []int64, m fenv.RoundingMode) []string {
		return tableRows(in, m, func(x float32) string {
			return fmt.Sprintf("math.Float32frombits(0x%08x)", math.Float32bits(x))
		})
	}},
	"float64": {"float64", func(in []int64, m fenv.RoundingMode) []string {
		return tableRows(in, m, func(x float64) string {
			return fmt.Sprintf("math.Float64frombits(0x%016x)", math.Float64bits(x))
		})
	}},
	"float80": {"fp.Float80", func(in []int64, m fenv.RoundingMode) []string {
		return tableRows(in, m, func(x fp.Float80) string {
			return fmt.Sprintf("{Lo: 0x%016x, Hi: 0x%04x}", x.Lo, x.Hi)
		})
	}},
	"float128": {"fp.Float128", func(in []int64, m fenv.RoundingMode) []string {
		return tableRows(in, m, func(x fp.Float128) string {
			return fmt.Sprintf("{Lo: 0x%016x, Hi: 0x%016x}", x.Lo, x.Hi)
		})
	}},
}

func tableRows[T crmath.Float](inputs []int64, mode fenv.RoundingMode, literal func(T) string) []string {
	return lo.Map(inputs, func(n int64, _ int) string {
		x := fp.FromIntRound[T](n, mode).Value()
		r := crmath.ConstSqrt(x, mode)
		return fmt.Sprintf("%s, // sqrt(%d) = %s", literal(r), n, fp.FromValue(r).Text('g', -1))
	})
}

// modeIdent turns "to-nearest" into "ToNearest".
func modeIdent(m fenv.RoundingMode) string {
	return strings.ReplaceAll(cases.Title(language.English).String(m.String()), "-", "")
}

func parseModes(names []string) ([]fenv.RoundingMode, error) {
	modes := make([]fenv.RoundingMode, 0, len(names))
	for _, name := range names {
		m, err := fenv.ParseRoundingMode(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return lo.Uniq(modes), nil
}

// GenerateTable returns the formatted Go source for cfg.
func GenerateTable(ctx context.Context, cfg TableConfig) ([]byte, error) {
	tt, ok := tableTypes[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (want one of %s)", cfg.Type, strings.Join(lo.Keys(tableTypes), ", "))
	}
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	modes, err := parseModes(cfg.Modes)
	if err != nil {
		return nil, err
	}
	if len(modes) == 0 {
		modes = fenv.Modes
	}

	inputs := lo.RangeFrom(cfg.Start, cfg.Count)
	rows := make([][]string, len(modes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range modes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = tt.rows(inputs, m)
			logger.Log.Debug("table rows ready", "mode", m.String(), "rows", len(rows[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by crmathgen. DO NOT EDIT.\n\npackage %s\n\n", cfg.Pkg)
	buf.WriteString("import (\n\t\"math\"\n\n\t\"github.com/ajroetker/go-crmath/fp\"\n)\n\n")
	last := cfg.Start + int64(cfg.Count) - 1
	for i, m := range modes {
		ident := cfg.Name + modeIdent(m)
		fmt.Fprintf(&buf, "// %s holds sqrt(%d) through sqrt(%d) rounded %s.\n", ident, cfg.Start, last, m)
		fmt.Fprintf(&buf, "var %s = []%s{\n", ident, tt.goType)
		for _, row := range rows[i] {
			buf.WriteString("\t" + row + "\n")
		}
		buf.WriteString("}\n\n")
	}

	// Drops whichever of math and fp the element type did not use.
	out, err := imports.Process(cfg.Out, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("formatting generated table: %w", err)
	}
	return out, nil
}

func newTableCmd() *cobra.Command {
	cfg := TableConfig{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Emit a table of correctly rounded square roots of consecutive integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := GenerateTable(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if cfg.Out == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(cfg.Out, src, 0o644); err != nil {
				return err
			}
			logger.Log.Info("wrote table", "file", cfg.Out, "type", cfg.Type, "entries", cfg.Count)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Type, "type", "float64", "Element type (float32, float64, float80, float128)")
	f.StringSliceVar(&cfg.Modes, "modes", []string{"nearest"}, "Rounding modes, one table each")
	f.Int64Var(&cfg.Start, "start", 1, "First integer operand")
	f.IntVar(&cfg.Count, "count", 16, "Number of entries per table")
	f.StringVar(&cfg.Name, "name", "SqrtTable", "Variable name prefix")
	f.StringVar(&cfg.Pkg, "pkg", "tables", "Package clause of the generated file")
	f.StringVarP(&cfg.Out, "out", "o", "", "Output file (stdout when empty)")
	return cmd
}

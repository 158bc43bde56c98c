// Copyright 2025 Magnus Pierre
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

// Package eda holds exploratory-data-analysis helpers over datatable
// datasets: grouping columns by type and adding missing-value indicators.
package eda

import (
	"context"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/magpierre/dsb-eda/internal/logging"
)

// DefaultIndicatorSuffix names the indicator column of column c as c + suffix.
const DefaultIndicatorSuffix = "_na"

// Analyzer runs the logged analysis operations. It holds no per-call state
// and is safe for concurrent use.
type Analyzer struct {
	logger *slog.Logger
	mem    memory.Allocator
	suffix string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAllocator sets the allocator for the arrays an Analyzer creates.
func WithAllocator(mem memory.Allocator) Option {
	return func(a *Analyzer) {
		if mem != nil {
			a.mem = mem
		}
	}
}

// WithIndicatorSuffix sets the suffix used to name indicator columns.
// An empty suffix is ignored.
func WithIndicatorSuffix(suffix string) Option {
	return func(a *Analyzer) {
		if suffix != "" {
			a.suffix = suffix
		}
	}
}

// NewAnalyzer returns an Analyzer logging to logger. A nil logger uses
// slog.Default().
func NewAnalyzer(logger *slog.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Analyzer{
		logger: logger,
		mem:    memory.DefaultAllocator,
		suffix: DefaultIndicatorSuffix,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// begin logs the start marker of op and returns the context and logger
// the rest of the operation logs through.
func (a *Analyzer) begin(ctx context.Context, op string) (context.Context, *slog.Logger) {
	ctx = logging.EnsureRunID(ctx)
	logger := a.logger.With("op", op)
	logger.InfoContext(ctx, "START ...")
	return ctx, logger
}

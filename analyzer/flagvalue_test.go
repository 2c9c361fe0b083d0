// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/shadowing/analyzer"
	"fillmore-labs.com/shadowing/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CheckFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.ShadowCheck,
			args:    []string{"-retype"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.RetypeCheck,
			args:    []string{"-retype=false"},
			want:    false,
		},
		{
			name:    "Unchanged",
			initial: config.RetypeCheck,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.RetypeCheck
			fv := NewCheckValue(&flags, value)
			fs.Var(fv, "retype", "report retyped shadows")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("RetypeCheck enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	flags := config.DefaultChecks()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewCheckValue(&flags, config.ShadowCheck), "shadow", "report shadows")

	if err := fs.Parse([]string{"-shadow=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.ShadowCheck)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&flags, config.ShadowCheck)
	fs.Var(fv, "shadow", "report shadows")

	const expectedUsage = `
  -shadow
    	report shadows (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New(WithRename(true))

	for _, name := range [...]string{"shadow", "retype", "use-after-shadow", "rename", "generated"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if got := a.Flags.Lookup("rename").Value.String(); got != "true" {
		t.Errorf("-rename = %s, want true", got)
	}

	if got := a.Flags.Lookup("generated").Value.String(); got != "false" {
		t.Errorf("-generated = %s, want false", got)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithShadow(false), nil, Options{WithRetype(true), WithGenerated(true)}}

	attrs := opts.LogValue().Group()
	if len(attrs) != 4 {
		t.Fatalf("Got %d attributes, want 4", len(attrs))
	}

	if got := attrs[0]; got.Key != "shadow" || got.Value.Bool() {
		t.Errorf("First attribute = %v, want shadow=false", got)
	}

	if got := attrs[3]; got.Key != "generated" || !got.Value.Bool() {
		t.Errorf("Last attribute = %v, want generated=true", got)
	}
}

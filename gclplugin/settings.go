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

package gclplugin

import "fillmore-labs.com/shadowing/analyzer"

// Settings is the configuration of the bindtrace plugin.
type Settings struct {
	// Shadow enables reports of shadowing declarations of the same type.
	Shadow *bool `json:"shadow,omitzero"`
	// Retype enables reports of shadowing declarations changing the type.
	Retype *bool `json:"retype,omitzero"`
	// UseAfterShadow enables reports of uses after a variable was shadowed.
	UseAfterShadow *bool `json:"use-after-shadow,omitzero"`
	// Rename enables fixes renaming shadowing variables.
	Rename *bool `json:"rename,omitzero"`
}

// Options converts the settings to analyzer options, skipping unset values.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.Shadow, analyzer.WithShadow)
	opts = appendOption(opts, s.Retype, analyzer.WithRetype)
	opts = appendOption(opts, s.UseAfterShadow, analyzer.WithUseAfterShadow)
	opts = appendOption(opts, s.Rename, analyzer.WithRename)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver

import (
	"dirpx.dev/resolv/apis"
)

// makeMany reconciles a one-or-many query slice against a one-or-many
// kwargs slice and constructs pairwise, in input order.
//
// A nil queries slice selects the default (or fails when none is
// configured); a nil kwargs slice means "no kwargs" for every query.
// Reconciliation precedence, in this exact order:
//
//  1. a single query broadcasts over many kwargs sets;
//  2. kwargs with no query at all is an error;
//  3. a single kwargs set broadcasts over many queries;
//  4. any remaining length difference is an error.
//
// Zero queries with zero kwargs succeed with an empty result.
func makeMany[P any](
	queries []apis.Query,
	kwargs []apis.Kwargs,
	common []apis.Kwargs,
	base string,
	hasDefault func() bool,
	make1 func(apis.Query, ...apis.Kwargs) (P, error),
) ([]P, error) {
	qs := queries
	if qs == nil {
		if !hasDefault() {
			return nil, &MissingDefaultError{Base: base}
		}
		qs = []apis.Query{apis.None()}
	}

	ks := kwargs
	if ks == nil {
		ks = make([]apis.Kwargs, len(qs))
	}

	if len(qs) == 1 && len(ks) > 1 {
		q := qs[0]
		qs = make([]apis.Query, len(ks))
		for i := range qs {
			qs[i] = q
		}
	}
	if len(ks) > 0 && len(qs) == 0 {
		return nil, &MismatchedLengthsError{Queries: 0, Kwargs: len(ks)}
	} else if len(ks) == 1 && len(qs) > 1 {
		k := ks[0]
		ks = make([]apis.Kwargs, len(qs))
		for i := range ks {
			ks[i] = k
		}
	} else if len(ks) != len(qs) {
		return nil, &MismatchedLengthsError{Queries: len(qs), Kwargs: len(ks)}
	}

	out := make([]P, 0, len(qs))
	for i := range qs {
		args := make([]apis.Kwargs, 0, len(common)+1)
		args = append(args, ks[i])
		args = append(args, common...)
		p, err := make1(qs[i], args...)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

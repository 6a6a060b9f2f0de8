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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/resolv/apis"
	"dirpx.dev/resolv/config"
	"dirpx.dev/resolv/entrypoint"
	"dirpx.dev/resolv/resolver"
)

type Aggregator func(xs []float64) float64

func Sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

func First(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[0]
}

func Last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}

func newAggregators(t *testing.T, opts ...config.Option) *resolver.FunctionResolver[Aggregator] {
	t.Helper()
	r, err := resolver.NewFunc[Aggregator](config.NewConfig(opts...), Sum, First, Last)
	require.NoError(t, err)
	return r
}

func TestNewFuncRejectsNonFunc(t *testing.T) {
	_, err := resolver.NewFunc[int](config.NewConfig())
	assert.ErrorIs(t, err, resolver.ErrNotFunc)
}

func TestFuncLookupByName(t *testing.T) {
	r := newAggregators(t)
	assert.Equal(t, []string{"first", "last", "sum"}, r.Keys())

	for _, raw := range []string{"sum", "Sum", "SUM", "s-u-m"} {
		fn, err := r.Lookup(apis.ByName(raw))
		require.NoError(t, err, "Lookup(%q)", raw)
		assert.Equal(t, 6.0, fn([]float64{1, 2, 3}))
	}
}

func TestFuncLookupUnknownName(t *testing.T) {
	r := newAggregators(t)
	_, err := r.Lookup(apis.ByName("median"))
	require.ErrorIs(t, err, resolver.ErrUnknownKey)
	assert.Contains(t, err.Error(), "sum")
}

func TestFuncLookupByValue(t *testing.T) {
	r := newAggregators(t)

	fn, err := r.Lookup(apis.ByValue(Aggregator(Sum)))
	require.NoError(t, err)
	assert.Equal(t, 6.0, fn([]float64{1, 2, 3}))

	_, err = r.Lookup(apis.ByValue("sum"))
	assert.ErrorIs(t, err, resolver.ErrInvalidType)
}

func TestFuncRegisterNamed(t *testing.T) {
	r := newAggregators(t)

	scale := 2.0
	doubledSum := func(xs []float64) float64 { return scale * Sum(xs) }
	require.NoError(t, r.RegisterNamed("doubled-sum", doubledSum, "x2"))

	fn, err := r.Lookup(apis.ByName("DoubledSum"))
	require.NoError(t, err)
	assert.Equal(t, 12.0, fn([]float64{1, 2, 3}))

	fn, err = r.Lookup(apis.ByName("x2"))
	require.NoError(t, err)
	assert.Equal(t, 12.0, fn([]float64{1, 2, 3}))
}

func TestFuncRegisterConflict(t *testing.T) {
	r := newAggregators(t)
	err := r.RegisterNamed("sum", Last)
	require.Error(t, err)

	require.NoError(t, r.RegisterTolerant(Sum))
}

func TestFuncDefault(t *testing.T) {
	r := newAggregators(t, config.WithDefaultKey("sum"))
	fn, err := r.Lookup(apis.None())
	require.NoError(t, err)
	assert.Equal(t, 6.0, fn([]float64{1, 2, 3}))

	r2 := newAggregators(t)
	_, err = r2.Lookup(apis.None())
	assert.ErrorIs(t, err, resolver.ErrNoDefault)

	r2.SetDefault(First)
	fn, err = r2.Lookup(apis.None())
	require.NoError(t, err)
	assert.Equal(t, 1.0, fn([]float64{1, 2, 3}))
}

func TestFuncLookupDefaultPerCall(t *testing.T) {
	r := newAggregators(t)
	fn, err := r.LookupDefault(apis.None(), apis.ByName("last"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, fn([]float64{1, 2, 3}))
}

func TestFuncMake(t *testing.T) {
	r := newAggregators(t)

	bound, err := r.Make(apis.ByName("sum"), apis.Kwargs{"weights": []float64{1, 2}})
	require.NoError(t, err)
	require.NotNil(t, bound.Fn)
	assert.Equal(t, 6.0, bound.Fn([]float64{1, 2, 3}))
	assert.Equal(t, apis.Kwargs{"weights": []float64{1, 2}}, bound.Kwargs)
	assert.False(t, bound.Bare())

	bare, err := r.Make(apis.ByName("first"))
	require.NoError(t, err)
	assert.True(t, bare.Bare())
}

func TestFuncMakeDuplicateKwarg(t *testing.T) {
	r := newAggregators(t)
	_, err := r.Make(apis.ByName("sum"),
		apis.Kwargs{"w": 1},
		apis.Kwargs{"w": 2},
	)
	assert.ErrorIs(t, err, resolver.ErrDuplicateKwarg)
}

func TestFuncMakeSafe(t *testing.T) {
	r := newAggregators(t, config.WithDefaultKey("sum"))

	bound, err := r.MakeSafe(apis.None())
	require.NoError(t, err)
	assert.Nil(t, bound.Fn)
	assert.True(t, bound.Bare())

	bound, err = r.MakeSafe(apis.ByName("last"))
	require.NoError(t, err)
	require.NotNil(t, bound.Fn)
	assert.Equal(t, 3.0, bound.Fn([]float64{1, 2, 3}))
}

func TestFuncDocdata(t *testing.T) {
	r := newAggregators(t)
	require.NoError(t, r.SetDocdata("sum", map[string]any{"summary": "adds things up"}))

	got, err := r.Docdata(apis.ByName("sum"), "summary")
	require.NoError(t, err)
	assert.Equal(t, "adds things up", got)
}

func TestFuncLoadEntrypoints(t *testing.T) {
	r := newAggregators(t)

	provider := func(group string) []entrypoint.Entry {
		return []entrypoint.Entry{
			{Name: "mean", Load: func() (any, error) { return Aggregator(Mean), nil }},
			{Name: "bogus", Load: func() (any, error) { return "nope", nil }},
			{Name: "dup", Load: func() (any, error) { return Aggregator(Sum), nil }},
		}
	}

	require.NoError(t, r.LoadEntrypoints("aggregators", provider))
	assert.Equal(t, []string{"first", "last", "mean", "sum"}, r.Keys())
}

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return Sum(xs) / float64(len(xs))
}

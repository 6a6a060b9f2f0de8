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

package resolv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/resolv"
	"dirpx.dev/resolv/config"
)

type Optimizer interface {
	LearningRate() float64
}

type AdamOptimizer struct {
	LR float64 `resolv:"lr"`
}

func (a *AdamOptimizer) LearningRate() float64 { return a.LR }

type SGDOptimizer struct {
	LR       float64 `resolv:"lr" required:"true"`
	Momentum float64 `resolv:"momentum"`
}

func (s *SGDOptimizer) LearningRate() float64 { return s.LR }

func TestClassResolverEndToEnd(t *testing.T) {
	optimizers, err := resolv.NewClassResolver([]Optimizer{
		&AdamOptimizer{}, &SGDOptimizer{},
	}, config.WithDefaultKey("adam"))
	require.NoError(t, err)

	assert.Equal(t, []string{"adam", "sgd"}, optimizers.Keys())

	opt, err := optimizers.Make(resolv.ByName("SGD-Optimizer"), resolv.Kwargs{
		"lr":       0.1,
		"momentum": 0.9,
	})
	require.NoError(t, err)
	sgd, ok := opt.(*SGDOptimizer)
	require.True(t, ok, "got %T", opt)
	assert.Equal(t, 0.1, sgd.LR)
	assert.Equal(t, 0.9, sgd.Momentum)

	// Absent query selects the configured default.
	opt, err = optimizers.Make(resolv.None(), resolv.Kwargs{"lr": 0.001})
	require.NoError(t, err)
	assert.IsType(t, &AdamOptimizer{}, opt)
	assert.Equal(t, 0.001, opt.LearningRate())

	// Pre-built instances pass through untouched.
	inst := &AdamOptimizer{LR: 42}
	opt, err = optimizers.Make(resolv.ByValue(inst))
	require.NoError(t, err)
	assert.Same(t, inst, opt)
}

type Activation func(x float64) float64

func ReLU(x float64) float64 { return math.Max(0, x) }

func Identity(x float64) float64 { return x }

func TestFunctionResolverEndToEnd(t *testing.T) {
	activations, err := resolv.NewFunctionResolver([]Activation{ReLU, Identity})
	require.NoError(t, err)

	assert.Equal(t, []string{"identity", "relu"}, activations.Keys())

	fn, err := activations.Lookup(resolv.ByName("ReLU"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, fn(-3))
	assert.Equal(t, 3.0, fn(3))

	bound, err := activations.Make(resolv.ByName("identity"), resolv.Kwargs{"scale": 2.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, bound.Fn(5))
	assert.Equal(t, resolv.Kwargs{"scale": 2.0}, bound.Kwargs)
	assert.False(t, bound.Bare())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "adam", resolv.Normalize("Adam-Optimizer", "optimizer"))
	assert.Equal(t, "relu", resolv.Normalize("ReLU", ""))
}

// Copyright 2024 The go-solver Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

func BenchmarkGetrfSerial(b *testing.B) {
	for _, size := range []int{32, 64, 128, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := randomDiagDominant(size, size, size, 42)
			a := make([]float64, len(src))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(a, src)
				Getrf(a, size, size, size, 1)
			}
		})
	}
}

func BenchmarkGetrfParallel(b *testing.B) {
	lanes := runtime.GOMAXPROCS(0)
	for _, size := range []int{64, 128, 256, 512} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := randomDiagDominant(size, size, size, 42)
			a := make([]float64, len(src))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(a, src)
				Getrf(a, size, size, size, lanes)
			}
		})
	}
}

func BenchmarkGetrfWithPool(b *testing.B) {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	for _, size := range []int{64, 128, 256, 512} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src := randomDiagDominant(size, size, size, 42)
			a := make([]float64, len(src))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(a, src)
				GetrfWithPool(pool, a, size, size, size)
			}
		})
	}
}

func BenchmarkGetrfFloat32(b *testing.B) {
	for _, size := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			src64 := randomDiagDominant(size, size, size, 42)
			src := make([]float32, len(src64))
			for i := range src {
				src[i] = float32(src64[i])
			}
			a := make([]float32, len(src))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(a, src)
				GetrfFloat32(a, size, size, size, 1)
			}
		})
	}
}

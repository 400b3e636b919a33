// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"runtime"
	"testing"

	"github.com/grailbio/bitarray/simd"
	"golang.org/x/sync/errgroup"
)

// heapSink keeps test arrays on the heap, where allocations of 16 bytes
// or more are word aligned.
var heapSink [][]byte

func makeBytes(n int) []byte {
	b := make([]byte, n)
	heapSink = append(heapSink, b)
	return b
}

// Utility functions to assist with benchmarking of embarrassingly parallel
// jobs.

type multiBenchFunc func(dst, src []byte, nIter int) int

type taggedMultiBenchFunc struct {
	f   multiBenchFunc
	tag string
}

// multiBenchmark runs bf with nJob total iterations spread over 1, half,
// and all CPUs, one goroutine per CPU, each with its own buffers.
func multiBenchmark(bf multiBenchFunc, benchmarkSubtype string, nDstByte, nSrcByte, nJob int, b *testing.B) {
	totalCpu := runtime.NumCPU()
	cases := []struct {
		nCpu    int
		descrip string
	}{
		{
			nCpu:    1,
			descrip: "1Cpu",
		},
		// 'Half' is often the saturation point, due to hyperthreading.
		{
			nCpu:    (totalCpu + 1) / 2,
			descrip: "HalfCpu",
		},
		{
			nCpu:    totalCpu,
			descrip: "AllCpu",
		},
	}
	for _, c := range cases {
		success := b.Run(benchmarkSubtype+c.descrip, func(b *testing.B) {
			dsts := make([][]byte, c.nCpu)
			srcs := make([][]byte, c.nCpu)
			for i := 0; i < c.nCpu; i++ {
				// Add 63 to prevent false sharing.
				newArrDst := makeBytes(nDstByte + 63)
				newArrSrc := makeBytes(nSrcByte + 63)
				for j := 0; j < nSrcByte; j++ {
					newArrSrc[j] = byte(j * 3)
				}
				dsts[i] = newArrDst[:nDstByte]
				srcs[i] = newArrSrc[:nSrcByte]
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var g errgroup.Group
				for threadIdx := 0; threadIdx < c.nCpu; threadIdx++ {
					threadIdx := threadIdx
					g.Go(func() error {
						nIter := (((threadIdx + 1) * nJob) / c.nCpu) - ((threadIdx * nJob) / c.nCpu)
						_ = bf(dsts[threadIdx], srcs[threadIdx], nIter)
						return nil
					})
				}
				_ = g.Wait()
			}
		})
		if !success {
			panic("benchmark failed")
		}
	}
}

func andSimdSubtask(dst, src []byte, nIter int) int {
	for iter := 0; iter < nIter; iter++ {
		simd.And(dst, dst, src)
	}
	return int(dst[0])
}

func andSlowSubtask(dst, src []byte, nIter int) int {
	for iter := 0; iter < nIter; iter++ {
		andSlow(dst, dst, src)
	}
	return int(dst[0])
}

func popcntSubtask(dst, src []byte, nIter int) int {
	sum := 0
	for iter := 0; iter < nIter; iter++ {
		sum += simd.Popcnt(src)
	}
	return sum
}

func Benchmark_And(b *testing.B) {
	funcs := []taggedMultiBenchFunc{
		{
			f:   andSimdSubtask,
			tag: "Word",
		},
		{
			f:   andSlowSubtask,
			tag: "Slow",
		},
	}
	for _, f := range funcs {
		// 1 KiB is a typical single-slice Bloom filter; 16 MiB is a large one.
		multiBenchmark(f.f, f.tag+"Short", 1024, 1024, 999999, b)
		multiBenchmark(f.f, f.tag+"Long", 16<<20, 16<<20, 50, b)
	}
}

func Benchmark_Popcnt(b *testing.B) {
	multiBenchmark(popcntSubtask, "Short", 1024, 1024, 999999, b)
	multiBenchmark(popcntSubtask, "Long", 16<<20, 16<<20, 50, b)
}

package strsort

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

const benchAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#%:;^&*()-."

func benchmarkBattery(b *testing.B, name string, ref []string) {
	data := make([]string, len(ref))
	for _, entry := range NewBattery(DefaultHybridThreshold) {
		b.Run(fmt.Sprintf("input=%s/alg=%s", name, entry.Name), func(b *testing.B) {
			var c Counter
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(data, ref)
				c.Reset()
				entry.Algorithm.Sort(data, &c)
			}
			b.ReportMetric(float64(c.Value()), "cmps/op")
		})
	}
}

func BenchmarkBattery_Random_1000(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	benchmarkBattery(b, "random", randomKeys(r, 1000, 200, benchAlphabet))
}

func BenchmarkBattery_Reversed_1000(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	ref := sortedCopy(randomKeys(r, 1000, 200, benchAlphabet))
	slices.Reverse(ref)
	benchmarkBattery(b, "reversed", ref)
}

func BenchmarkBattery_SharedPrefix_1000(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	ref := randomKeys(r, 1000, 20, "ab")
	for i := range ref {
		ref[i] = "prefix-prefix-prefix-" + ref[i]
	}
	benchmarkBattery(b, "shared_prefix", ref)
}

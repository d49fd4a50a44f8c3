package jgram_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/creachadair/jgram"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))
	text := string(input)

	b.Run("StdValid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if !json.Valid(input) {
				b.Fatal("Input reported invalid")
			}
		}
	})

	b.Run("IsValid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if !jgram.IsValid(text) {
				b.Fatal("Input reported invalid")
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jgram.Parse(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

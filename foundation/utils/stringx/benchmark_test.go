// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the pipeline stages and the full pipeline.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-19 v0.2.0: Benchmarks for the cleaning pipeline

package stringx

import (
	"strings"
	"testing"
)

var benchInputs = []string{
	"customer_id",
	"  Größe der Lieferung (cm)  ",
	"myHTTPRequestHandlerV2",
	"Crème brûlée, à la carte!",
	strings.Repeat("Grüße aus Köln ", 20),
}

func BenchmarkNormalizeWhitespace(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizeWhitespace(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkNormalizeUnicode(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizeUnicode(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkNormalizeUnicodeASCII(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NormalizeUnicode("plain ascii column name")
	}
}

func BenchmarkRemoveSpecialCharacters(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RemoveSpecialCharacters(benchInputs[i%len(benchInputs)], "_-")
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Tokenize(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkToSnakeCase(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToSnakeCase(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkToCamelCase(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToCamelCase(benchInputs[i%len(benchInputs)])
	}
}

func BenchmarkCleanString(b *testing.B) {
	cfg := PipelineConfig{
		NormalizeUnicode:    true,
		NormalizeWhitespace: true,
		RemoveSpecialChars:  true,
		TargetCase:          CaseSnake,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CleanString(benchInputs[i%len(benchInputs)], cfg)
	}
}

func BenchmarkCleanStringParallel(b *testing.B) {
	cfg := DefaultPipelineConfig()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = CleanString(benchInputs[i%len(benchInputs)], cfg)
			i++
		}
	})
}

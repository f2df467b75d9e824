// Package docintel simulates document OCR for the workspace's document
// intelligence card. Nothing is recognized: the summary echoes the first
// non-empty lines of a text file with a fixed confidence score.
package docintel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// MaxLines is how many non-empty lines the summary echoes.
	MaxLines = 8
	// MaxLineRunes truncates each echoed line.
	MaxLineRunes = 120
	// Placeholder is shown before any document is summarized.
	Placeholder = "Upload a document to simulate OCR insights."

	confidenceLine = "Confidence: 0.87 (simulated)"
)

var (
	tracer       = otel.Tracer("atrisure/docintel")
	lineSplitter = regexp.MustCompile(`\r?\n`)
)

// Summarize builds the simulated OCR summary for a document's text.
func Summarize(filename, text string) string {
	out := []string{fmt.Sprintf("OCR Summary for %s:", filename)}
	n := 0
	for _, line := range lineSplitter.Split(text, -1) {
		if line == "" {
			continue
		}
		n++
		out = append(out, fmt.Sprintf("Line %d: %s", n, truncateRunes(line, MaxLineRunes)))
		if n == MaxLines {
			break
		}
	}
	out = append(out, confidenceLine)
	return strings.Join(out, "\n")
}

// SummarizeFile reads a local text file and summarizes it under its base name.
func SummarizeFile(ctx context.Context, path string) (string, error) {
	_, span := tracer.Start(ctx, "docintel.SummarizeFile",
		trace.WithAttributes(attribute.String("docintel.file", filepath.Base(path))))
	defer span.End()

	b, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("read document: %w", err)
	}
	return Summarize(filepath.Base(path), string(b)), nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package cover

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Thresholds for deciding which recognized blocks are big enough to be title
// or author text rather than blurbs and small print.  Tuned against real
// cover photos.
const (
	maxHeightRatio = 0.35
	avgHeightRatio = 0.8
	verticalTie    = 0.05
)

// Block is one unit of text detected in a cover photo by the external
// recognition engine.  Height and VerticalCenter are normalized to image
// height, with 0 at the top.
type Block struct {
	Text           string  `json:"text"`
	Height         float64 `json:"boundingBoxHeight"`
	VerticalCenter float64 `json:"verticalCenter"`
}

// ParseBlocks decodes a recognizer JSON dump into blocks, so saved
// recognition output can be replayed through the pipeline.
func ParseBlocks(data []byte) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode recognizer output: %w", err)
	}
	return blocks, nil
}

// SelectLines filters out small-print blocks and orders the survivors the way
// a person reads a cover: top to bottom, with near-ties going to the bigger
// text first.  Returns one line per surviving block.
func SelectLines(blocks []Block, sugar *zap.SugaredLogger) []string {
	if len(blocks) == 0 {
		return nil
	}

	var maxHeight, total float64
	for _, b := range blocks {
		if b.Height > maxHeight {
			maxHeight = b.Height
		}
		total += b.Height
	}
	avgHeight := total / float64(len(blocks))

	// Very small text on covers is likely to be review quotes, publisher
	// marks or other junk, so prune anything well below the prominent size.
	threshold := maxHeight * maxHeightRatio
	if avg := avgHeight * avgHeightRatio; avg > threshold {
		threshold = avg
	}

	survivors := []Block{}
	for _, b := range blocks {
		if b.Height < threshold {
			sugar.Debugf("Prune small text %q height %.3f vs %.3f", b.Text, b.Height, threshold)
			continue
		}
		survivors = append(survivors, b)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		diff := a.VerticalCenter - b.VerticalCenter
		if diff < verticalTie && diff > -verticalTie {
			// Same band of the cover; bigger text is assumed more prominent.
			return a.Height > b.Height
		}
		return a.VerticalCenter < b.VerticalCenter
	})

	lines := make([]string, 0, len(survivors))
	for _, b := range survivors {
		lines = append(lines, b.Text)
	}
	return lines
}

// JoinLines produces the newline-delimited form the downstream stages consume.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

package entity

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	standardBoardSize    = 19
	standardWinLength    = 5
	standardCaptureLimit = 10
	standardDepth        = 3
	standardCaptureScore = 200
)

// Settings is the immutable rule and engine configuration shared by every
// component. It is built once at start-up and passed by value.
type Settings struct {
	BoardSize    int
	WinLength    int
	CaptureLimit int

	Depth         int
	CaptureWeight int
	// RunWeights maps a run length to its score; the last entry covers every
	// run at least WinLength long.
	RunWeights [6]int
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:     standardBoardSize,
		WinLength:     standardWinLength,
		CaptureLimit:  standardCaptureLimit,
		Depth:         standardDepth,
		CaptureWeight: standardCaptureScore,
		RunWeights:    [6]int{0, 1, 10, 100, 1000, 100000},
	}
}

// RunWeight returns the score of a run of the given length.
func (that Settings) RunWeight(length int) int {
	last := len(that.RunWeights) - 1
	if length >= that.WinLength || length > last {
		return that.RunWeights[last]
	}
	if length <= 0 {
		return 0
	}
	return that.RunWeights[length]
}

// Fingerprint hashes every field that can change a search result.
func (that Settings) Fingerprint() uint64 {
	values := []int{that.BoardSize, that.WinLength, that.CaptureLimit, that.Depth, that.CaptureWeight}
	values = append(values, that.RunWeights[:]...)

	buf := make([]byte, 0, len(values)*8)
	for _, value := range values {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(value)))
	}

	return xxhash.Sum64(buf)
}

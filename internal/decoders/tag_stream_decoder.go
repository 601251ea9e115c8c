package decoders

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"click-rate/internal/models"

	"github.com/sourcegraph/conc/iter"
)

const (
	// minEventsPerShard keeps small runs on the sequential path.
	minEventsPerShard = 1 << 15
)

//go:generate mockgen -source=tag_stream_decoder.go -destination=./mocks/tag_stream_decoder_mock.go -package=mocks
type TagStreamDecoder interface {
	// Reconstruct slices flatTimestamps by counts and returns absolute timestamps in nanoseconds.
	// Output is in ascending window order and emission order within a window.
	Reconstruct(counts, flatTimestamps []int64, windowLength int64, unit models.TagUnit) ([]int64, error)
	// DecodeRecord reconstructs the timeline of a whole acquisition run.
	DecodeRecord(record *models.RawTagRecord) (*models.AbsoluteTimeline, error)
}

type Option func(*tagStreamDecoder)

// WithParallelism lets large runs be sliced by up to n goroutines.
func WithParallelism(n int) Option {
	return func(d *tagStreamDecoder) {
		if n > 0 {
			d.parallelism = n
		}
	}
}

// WithClock overrides the clock used to stamp reconstructed timelines.
func WithClock(now func() time.Time) Option {
	return func(d *tagStreamDecoder) {
		d.now = now
	}
}

type tagStreamDecoder struct {
	parallelism int
	now         func() time.Time
}

func NewTagStreamDecoder(opts ...Option) TagStreamDecoder {
	d := &tagStreamDecoder{
		parallelism: 1,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// shard is a contiguous range of windows [first, last) decoded by one goroutine.
type shard struct {
	first, last int
	err         error
}

func (d *tagStreamDecoder) Reconstruct(counts, flatTimestamps []int64, windowLength int64, unit models.TagUnit) ([]int64, error) {
	if windowLength <= 0 {
		return nil, errInvalidConfiguration(fmt.Sprintf("window length must be positive, got %d", windowLength))
	}

	cursors, err := prefixCursors(counts, len(flatTimestamps))
	if err != nil {
		return nil, err
	}

	native, err := ToNative(flatTimestamps, unit)
	if err != nil {
		return nil, err
	}

	absolute := make([]int64, len(native))
	if len(absolute) == 0 {
		return absolute, nil
	}

	shards := d.planShards(cursors)
	if len(shards) == 1 {
		if err := fillWindows(absolute, native, cursors, windowLength, shards[0].first, shards[0].last); err != nil {
			return nil, err
		}
		return absolute, nil
	}

	// Shards own disjoint output ranges, so no merge step is needed.
	iter.Iterator[shard]{MaxGoroutines: d.parallelism}.ForEach(shards, func(s *shard) {
		s.err = fillWindows(absolute, native, cursors, windowLength, s.first, s.last)
	})
	for _, s := range shards {
		if s.err != nil {
			return nil, s.err
		}
	}

	return absolute, nil
}

func (d *tagStreamDecoder) DecodeRecord(record *models.RawTagRecord) (*models.AbsoluteTimeline, error) {
	absolute, err := d.Reconstruct(record.Counts, record.Timestamps, record.WindowLength, record.Unit)
	if err != nil {
		return nil, err
	}

	return &models.AbsoluteTimeline{
		RunID:           record.RunID,
		WindowLength:    record.WindowLength,
		Counts:          slices.Clone(record.Counts),
		Timestamps:      absolute,
		ReconstructedAt: d.now(),
	}, nil
}

// planShards splits the window range into groups with roughly equal event counts.
func (d *tagStreamDecoder) planShards(cursors []int) []shard {
	windowCount := len(cursors) - 1
	total := cursors[windowCount]

	shardCount := d.parallelism
	if maxShards := total / minEventsPerShard; shardCount > maxShards {
		shardCount = maxShards
	}
	if shardCount > windowCount {
		shardCount = windowCount
	}
	if shardCount <= 1 {
		return []shard{{first: 0, last: windowCount}}
	}

	shards := make([]shard, 0, shardCount)
	first := 0
	for i := 1; i <= shardCount && first < windowCount; i++ {
		last := windowCount
		if i < shardCount {
			target := total / shardCount * i
			// first window whose cumulative end passes the target
			last = sort.Search(windowCount, func(k int) bool { return cursors[k+1] >= target }) + 1
			if last <= first {
				continue
			}
		}
		shards = append(shards, shard{first: first, last: last})
		first = last
	}
	return shards
}

// prefixCursors returns cursors where window k occupies flat[cursors[k]:cursors[k+1]].
func prefixCursors(counts []int64, flatLen int) ([]int, error) {
	cursors := make([]int, len(counts)+1)
	var total int64
	for k, c := range counts {
		if c < 0 {
			return nil, errLengthMismatch(fmt.Sprintf("window %d has negative count %d", k, c))
		}
		// total <= flatLen holds here, so the subtraction cannot wrap
		if c > int64(flatLen)-total {
			return nil, errLengthMismatch(fmt.Sprintf("counts exceed the %d delivered timestamps at window %d", flatLen, k))
		}
		total += c
		cursors[k+1] = int(total)
	}
	if total != int64(flatLen) {
		return nil, errLengthMismatch(fmt.Sprintf("sum of counts (%d) does not match number of timestamps (%d)", total, flatLen))
	}
	return cursors, nil
}

// fillWindows writes windows [first, last) into absolute.
func fillWindows(absolute, native []int64, cursors []int, windowLength int64, first, last int) error {
	maxIndex := int64(math.MaxInt64 / windowLength)
	for k := first; k < last; k++ {
		lo, hi := cursors[k], cursors[k+1]
		if lo == hi {
			continue
		}
		if int64(k) > maxIndex {
			return errTimestampOverflow(fmt.Sprintf("offset of window %d overflows int64", k))
		}
		offset := int64(k) * windowLength
		for i := lo; i < hi; i++ {
			v := native[i]
			if v > 0 && offset > math.MaxInt64-v {
				return errTimestampOverflow(fmt.Sprintf("timestamp %d in window %d overflows int64", v, k))
			}
			absolute[i] = v + offset
		}
	}
	return nil
}

// ToNative converts in-window timestamps to nanoseconds. Native input is returned as is and must
// be treated as read-only; clock-cycle input is scaled into a new slice.
func ToNative(flatTimestamps []int64, unit models.TagUnit) ([]int64, error) {
	switch unit.Mode {
	case models.UnitNative, "":
		return flatTimestamps, nil
	case models.UnitClockCycles:
		multiplier := unit.CycleMultiplier
		if multiplier <= 0 {
			return nil, errInvalidConfiguration(fmt.Sprintf("cycle multiplier must be positive, got %d", multiplier))
		}
		native := make([]int64, len(flatTimestamps))
		for i, v := range flatTimestamps {
			if v > math.MaxInt64/multiplier || v < math.MinInt64/multiplier {
				return nil, errTimestampOverflow(fmt.Sprintf("timestamp %d overflows int64 when scaled by %d", v, multiplier))
			}
			native[i] = v * multiplier
		}
		return native, nil
	default:
		return nil, errInvalidConfiguration(fmt.Sprintf("unknown unit mode %q", unit.Mode))
	}
}

// CountOutOfWindow returns how many in-window timestamps fall outside [0, windowLength) once
// converted to nanoseconds. Such tags are decoded as is; a non-zero count usually points at a
// unit mismatch upstream.
func CountOutOfWindow(flatTimestamps []int64, windowLength int64, unit models.TagUnit) int {
	multiplier := int64(1)
	if unit.Mode == models.UnitClockCycles && unit.CycleMultiplier > 0 {
		multiplier = unit.CycleMultiplier
	}
	limit := windowLength / multiplier
	if windowLength%multiplier != 0 {
		limit++
	}

	outside := 0
	for _, v := range flatTimestamps {
		if v < 0 || v >= limit {
			outside++
		}
	}
	return outside
}

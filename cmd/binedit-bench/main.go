// binedit-bench is a benchmark and stress test for the binedit library.
// It builds heavily fragmented buffers and measures splice, extraction,
// coalesce, and typed-read performance.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/binedit/binedit"
)

const (
	blobSize      = 64 * 1024 * 1024 // 64 MB base payload
	fragmentSize  = 4 * 1024
	spliceOps     = 10000
	subEditorOps  = 10000
	readerOps     = 1000
	containerSize = 1 << 20
)

type benchResult struct {
	name     string
	duration time.Duration
	ops      int
	extra    string
}

func (r benchResult) row() []string {
	opsPerSec := ""
	if r.ops > 0 {
		opsPerSec = fmt.Sprintf("%.0f", float64(r.ops)/r.duration.Seconds())
	}
	return []string{r.name, r.duration.Round(time.Microsecond).String(), opsPerSec, r.extra}
}

func main() {
	fmt.Println("binedit Benchmark and Stress Test")
	fmt.Println("=================================")
	fmt.Printf("Base payload: %d MB, fragment size: %d KB\n", blobSize/(1024*1024), fragmentSize/1024)
	fmt.Printf("Go version: %s, GOMAXPROCS: %d\n", runtime.Version(), runtime.GOMAXPROCS(0))
	fmt.Println()

	blob := make([]byte, blobSize)
	if _, err := rand.Read(blob); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate payload: %v\n", err)
		os.Exit(1)
	}

	var results []benchResult
	results = append(results, benchFragmentedBuild(blob))
	results = append(results, benchPushSplices(blob))
	results = append(results, benchInsertMiddle(blob))
	results = append(results, benchSubEditor(blob))
	results = append(results, benchTidy(blob))
	results = append(results, benchScalarReads(blob))
	results = append(results, benchContainerScan(blob))

	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Benchmark", "Duration", "Ops/sec", "Notes"})
	table.SetAutoFormatHeaders(false)
	for _, r := range results {
		table.Append(r.row())
	}
	table.Render()
}

// fragment builds an editor over blob split into fragmentSize chunks.
func fragment(blob []byte) *binedit.Editor {
	e := binedit.New()
	for pos := 0; pos < len(blob); pos += fragmentSize {
		end := pos + fragmentSize
		if end > len(blob) {
			end = len(blob)
		}
		if err := e.EmplaceBack(blob[pos:end]); err != nil {
			fmt.Fprintf(os.Stderr, "EmplaceBack failed: %v\n", err)
			os.Exit(1)
		}
	}
	return e
}

func benchFragmentedBuild(blob []byte) benchResult {
	start := time.Now()
	e := fragment(blob)
	return benchResult{
		name:     "Build fragmented buffer",
		duration: time.Since(start),
		ops:      e.ChunkCount(),
		extra:    fmt.Sprintf("%d chunks", e.ChunkCount()),
	}
}

func benchPushSplices(blob []byte) benchResult {
	e := fragment(blob[:fragmentSize])
	piece, err := binedit.FromOwnedBytes(blob[:fragmentSize])
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromOwnedBytes failed: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	for i := 0; i < spliceOps; i++ {
		if i%2 == 0 {
			e.PushBack(piece)
		} else {
			e.PushFront(piece)
		}
	}
	return benchResult{
		name:     "PushBack/PushFront splices",
		duration: time.Since(start),
		ops:      spliceOps,
		extra:    fmt.Sprintf("final size %d MB", e.Size()/(1024*1024)),
	}
}

func benchInsertMiddle(blob []byte) benchResult {
	e := fragment(blob)
	piece, err := binedit.FromOwnedBytes(blob[:64])
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromOwnedBytes failed: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	for i := 0; i < spliceOps; i++ {
		if err := e.Insert(e.Size()/2, piece); err != nil {
			fmt.Fprintf(os.Stderr, "Insert failed: %v\n", err)
			os.Exit(1)
		}
	}
	return benchResult{
		name:     "Insert mid-buffer (with split)",
		duration: time.Since(start),
		ops:      spliceOps,
		extra:    fmt.Sprintf("%d chunks after", e.ChunkCount()),
	}
}

func benchSubEditor(blob []byte) benchResult {
	e := fragment(blob)
	size := e.Size()

	start := time.Now()
	for i := 0; i < subEditorOps; i++ {
		offset := (size / int64(subEditorOps)) * int64(i) / 2
		if _, err := e.SubEditor(offset, size/4); err != nil {
			fmt.Fprintf(os.Stderr, "SubEditor failed: %v\n", err)
			os.Exit(1)
		}
	}
	return benchResult{
		name:     "SubEditor zero-copy extraction",
		duration: time.Since(start),
		ops:      subEditorOps,
	}
}

func benchTidy(blob []byte) benchResult {
	e := fragment(blob)

	start := time.Now()
	e.Tidy()
	elapsed := time.Since(start)
	return benchResult{
		name:     "Tidy full coalesce",
		duration: elapsed,
		extra:    fmt.Sprintf("%.0f MB/s", float64(blobSize)/(1024*1024)/elapsed.Seconds()),
	}
}

func benchScalarReads(blob []byte) benchResult {
	// Every read recoalesces, so keep the buffer modest.
	e := fragment(blob[:containerSize])

	start := time.Now()
	for i := 0; i < readerOps; i++ {
		offset := int64(i) * 8 % (e.Size() - 8)
		_ = binedit.NewReaderAt[uint64](e, offset).Get()
	}
	return benchResult{
		name:     "Scalar reads (recoalesce each)",
		duration: time.Since(start),
		ops:      readerOps,
	}
}

func benchContainerScan(blob []byte) benchResult {
	e := fragment(blob[:containerSize])
	count := e.Size() / 8

	container, err := binedit.NewContainer[uint64](e, 0, count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "NewContainer failed: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	var sum uint64
	// Before, not Equal: the stride need not divide the element count.
	for it := container.Begin(); it.Before(container.End()); it.Skip(64) {
		sum += it.Value()
	}
	return benchResult{
		name:     "Container strided scan",
		duration: time.Since(start),
		ops:      int(count / 64),
		extra:    fmt.Sprintf("checksum %x", sum&0xffff),
	}
}

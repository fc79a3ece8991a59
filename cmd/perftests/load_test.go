package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	negotiation "marketbids/internal/negotiationService"
	"marketbids/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumListings int
	ReadRatio   int // out of 10 operations
	Burst       bool
}

// OperationMetrics collects latencies from concurrent benchmark goroutines.
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95 time.Duration) {
	om.mu.Lock()
	latencies := om.latencies
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	return
}

// Benchmark_Load_NegotiationSystem runs mixed write/read scenarios against
// the in-memory store.
func Benchmark_Load_NegotiationSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"WriteHeavy", 200, 0, false},
		{"Mixed-Workload", 50, 7, false},
		{"ReadHeavy", 50, 9, false},
		{"Peak-Burst", 50, 5, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	store := repository.NewMemoryStore()
	svc := negotiation.NewService(store, store)
	seedListings(store, s.NumListings)
	ctx := context.Background()

	var totalOps, placedBids, reads int64
	metrics := &OperationMetrics{}
	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			listingID := fmt.Sprintf("listing_%d", rnd.Intn(s.NumListings))
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.ListBidsForSeller(ctx, "seller_bench", negotiation.FilterAll, negotiation.FilterAll); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&reads, 1)
			} else {
				amount := fmt.Sprintf("%d.00", 100+rnd.Intn(100))
				buyerID := fmt.Sprintf("buyer_%d", rnd.Int())
				if _, err := svc.PlaceBid(ctx, listingID, buyerID, amount, ""); err != nil {
					b.Logf("ignored bid error: %v", err)
				} else {
					atomic.AddInt64(&placedBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	min, max, avg, p95 := metrics.Stats()
	b.Logf(
		"Scenario: %s | Listings: %d | Total Ops: %d | Placed: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f",
		s.Name, s.NumListings, totalOps, placedBids, reads, elapsed,
		float64(totalOps)/elapsed.Seconds(),
		float64(min.Microseconds()), float64(avg.Microseconds()),
		float64(max.Microseconds()), float64(p95.Microseconds()),
	)
}

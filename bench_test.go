package syncds

import (
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

func BenchmarkQueuePushTryPop(b *testing.B) {
	q := NewQueue[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.TryPop()
	}
}

func BenchmarkStackPushPopHandle(b *testing.B) {
	s := NewStack[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		_, _ = s.PopHandle()
	}
}

// Single consumer blocked in WaitAndPop, one producer.
func BenchmarkQueuePushWaitAndPop(b *testing.B) {
	q := NewQueue[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < b.N; i++ {
			q.WaitAndPop()
		}
		close(done)
	}()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	<-done
}

// benchmarkMPSC drives push from 4x GOMAXPROCS producer goroutines
// while a single goroutine polls drain until the run ends. push is
// retried until it accepts the value.
func benchmarkMPSC(b *testing.B, push func(producer uint64, v int) bool, drain func()) {
	done := make(chan struct{})
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				drain()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		for i := 0; pb.Next(); i++ {
			for !push(pid, i) {
			}
		}
	})
	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkQueueMPSC(b *testing.B) {
	q := NewQueue[int]()
	benchmarkMPSC(b,
		func(_ uint64, v int) bool { q.Push(v); return true },
		func() { q.TryPop() },
	)
}

// BenchmarkLockFreeRingMPSC runs the same load against a sharded
// lock-free ring, one shard per producer slot, as a lower bound for
// what the queue's lock costs.
func BenchmarkLockFreeRingMPSC(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 4)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkMPSC(b,
		func(pid uint64, v int) bool { return r.Write(pid, v) },
		func() { r.TryRead() },
	)
}

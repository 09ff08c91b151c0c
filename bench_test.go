// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package renderloop_test

import (
	"testing"

	"code.hybscloud.com/renderloop"
)

// BenchmarkTrySendTryRecv measures a single-slot hand-off on one goroutine.
func BenchmarkTrySendTryRecv(b *testing.B) {
	send, recv := renderloop.NewChannel[renderloop.Event]()
	b.ReportAllocs()
	for b.Loop() {
		if err := send.TrySend(renderloop.AboutToWait); err != nil {
			b.Fatal(err)
		}
		if _, err := recv.TryRecv(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSendRecvCrossGoroutine measures the blocking hand-off between
// a producer and a consumer goroutine.
func BenchmarkSendRecvCrossGoroutine(b *testing.B) {
	skipRace(b)
	send, recv := renderloop.NewChannel[int]()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, err := recv.Recv(); err != nil {
				return
			}
		}
	}()
	b.ReportAllocs()
	for b.Loop() {
		if err := send.Send(1); err != nil {
			b.Fatal(err)
		}
	}
	send.Close()
	<-done
}

// BenchmarkReceiveRender measures classifying a render tick with a live
// swapchain.
func BenchmarkReceiveRender(b *testing.B) {
	send, recv := renderloop.NewChannel[renderloop.Event]()
	cell := renderloop.NewCell[renderloop.WindowData]()
	if err := cell.Set(renderloop.WindowData{Size: initialSize, Window: newFakeWindow(initialSize)}); err != nil {
		b.Fatal(err)
	}
	src := renderloop.NewEventSource(recv, cell)
	dev := newFakeDevice()
	if err := send.TrySend(renderloop.Resumed); err != nil {
		b.Fatal(err)
	}
	if _, err := src.Receive(dev); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if err := send.TrySend(renderloop.AboutToWait); err != nil {
			b.Fatal(err)
		}
		ev, err := src.Receive(dev)
		if err != nil || ev.Swapchain == nil {
			b.Fatalf("got %s, %v", ev, err)
		}
	}
}

// BenchmarkCellWait measures reading a published cell.
func BenchmarkCellWait(b *testing.B) {
	c := renderloop.NewCell[int]()
	_ = c.Set(1)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package renderloop separates a platform event loop from a render
// goroutine.
//
// The platform loop owns the window and runs on the calling (main)
// goroutine; rendering runs on its own goroutine. The two share exactly two
// structures: a write-once [Cell] carrying the window data, and a
// single-slot channel ([NewChannel]) carrying platform events.
//
// # Architecture
//
//   - Handshake: the event pump creates the window and publishes
//     [WindowData] once; the render goroutine blocks on it.
//   - Transport: a bounded lock-free SPSC ring from
//     [code.hybscloud.com/lfq] with a single in-flight slot. The producer
//     waits until the consumer drains the previous event, so the platform
//     loop never runs ahead of rendering.
//   - Blocking: [Sender.Send] and [Receiver.Recv] wait past
//     [code.hybscloud.com/iox.ErrWouldBlock] with adaptive backoff;
//     [Sender.TrySend] and [Receiver.TryRecv] are the non-blocking forms.
//     A blocked Recv does not park: while the platform loop sleeps in
//     [Wait] the render goroutine keeps waking on the backoff schedule.
//   - Shutdown: closing either end makes the peer's next operation fail
//     with [ErrDisconnected]. There is no other cancellation.
//   - Swapchain: created on Resumed and destroyed on Suspended by the
//     [EventSource], on the render goroutine only.
//
// # Events
//
// [EventSource.Receive] yields one [AppEvent] per platform event:
// [Terminate] on close request or Escape, [Render] on the end of each
// event loop iteration (with a nil swapchain while not visible),
// [RawWindowEvent] and [RawEvent] for everything else.
//
// # Example
//
//	rl := renderloop.Spawn(loop, renderloop.DefaultConfig(renderloop.WithTitle("demo")),
//		func(src *renderloop.EventSource) error {
//			for {
//				ev, err := src.Receive(device)
//				if err != nil {
//					return err
//				}
//				switch ev.Kind {
//				case renderloop.Terminate:
//					return nil
//				case renderloop.Render:
//					if ev.Swapchain == nil {
//						continue // not visible yet
//					}
//					draw(ev.Swapchain)
//				}
//			}
//		})
//	if _, err := rl.RunLoop(); err != nil {
//		log.Fatal(err)
//	}
package renderloop

// Package ams provides a high-level API for the VU-AMS ambulatory
// monitoring device.
//
// # Overview
//
// A Device combines the protocol codec and the serial transport into the
// operations the instrument supports:
//
//   - Presence check
//   - Status query (typed enumeration or human-readable label)
//   - Label (serial number) query
//   - Clock synchronization
//   - Recording start/stop
//   - Marker emission
//
// # Basic Usage
//
//	dev := ams.New("COM5", ams.WithLogger(logger))
//
//	if err := dev.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Disconnect()
//
//	status, err := dev.Status(ctx)
//	if errors.Is(err, transport.ErrNoData) {
//	    // the device did not answer before the deadline
//	}
//	fmt.Println(status) // e.g. "Idle"
//
//	_ = dev.SendMarker("baseline start")
//
// # Session Lifecycle
//
// A Device is Disconnected at birth. Connect opens the transport and
// immediately requires the device's fixed presence signature; on any
// failure the transport is closed again and the Device stays Disconnected.
// Disconnect is unconditional and idempotent. Every other operation
// requires a connected device and returns ErrNotConnected otherwise.
//
// # Timeouts
//
// A query the device leaves unanswered degrades to transport.ErrNoData
// after the response deadline (3 s by default); it is never retried and
// never tears the session down. SendMarker is the exception to the
// request/response pattern: the device sends no reply to markers, so the
// call returns as soon as the frame is written.
//
// # Concurrency
//
// Device is not safe for concurrent use. The wire protocol has no request
// identifiers, so a second request must not be issued before the prior
// one's response (or timeout) is resolved.
package ams

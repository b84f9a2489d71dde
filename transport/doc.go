// Package transport owns the serial link to the AMS USB infrared bridge.
//
// # Overview
//
// The package covers two concerns:
//
//   - Discovery: enumerating serial ports and recognizing the bridge by its
//     advertised USB identity (FTDI FT232R, VID 0403 / PID 6001).
//   - The Session: a single owned duplex byte stream with a blocking write
//     and a deadline-bounded polling read.
//
// # Discovery
//
//	ports, err := transport.ListPorts()
//	if err != nil { ... }
//	name, ok := transport.FindDevicePort(ports, logger)
//	if !ok {
//	    // no bridge attached; not an error
//	}
//
// # Sessions
//
// Open a named port with the device's line parameters (38400 baud, 8 data
// bits, 1 stop bit, no parity, non-blocking reads):
//
//	sess, err := transport.Open(name, transport.WithLogger(logger))
//	if err != nil { ... }
//	defer sess.Close()
//
//	if err := sess.Write(frame); err != nil { ... }
//	resp, err := sess.PollRead(ctx)
//	if errors.Is(err, transport.ErrNoData) {
//	    // the device did not answer before the deadline
//	}
//
// PollRead is a cooperative wait: it rechecks the stream every poll interval
// (100 ms by default) until bytes arrive or the response deadline (3 s by
// default) passes. Cancelling the context ends the wait early; both outcomes
// surface as ErrNoData, never as a hang.
//
// For tests or alternate bridges, wrap any non-blocking io.ReadWriteCloser
// with NewSession instead of opening a real port.
package transport

package transport

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

// USB identity of the AMS infrared bridge (an FTDI FT232R adapter).
const (
	// DeviceVendorID is the FTDI vendor ID as 4-digit uppercase hex
	DeviceVendorID = "0403"

	// DeviceProductID is the FT232R product ID as 4-digit uppercase hex
	DeviceProductID = "6001"

	// DeviceManufacturer is the manufacturer string the bridge reports
	DeviceManufacturer = "FTDI"
)

// PortInfo describes one enumerated serial endpoint. Identity fields are
// used for discovery matching only and are never persisted.
type PortInfo struct {
	// Name is the OS port name (e.g. COM5, /dev/ttyUSB0)
	Name string

	// Description is the port's friendly name as reported by the OS
	Description string

	// VendorID is the USB vendor ID as 4-digit uppercase hex, when known
	VendorID string

	// ProductID is the USB product ID as 4-digit uppercase hex, when known
	ProductID string

	// Manufacturer is the USB manufacturer string, when the platform
	// exposes one
	Manufacturer string
}

// ListPorts enumerates the serial ports available on this machine together
// with their USB metadata. Not every platform reports every field — the
// enumerator exposes no manufacturer string at all — so absent fields stay
// empty and FindDevicePort decides what that means per field.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, &TransportError{Op: "enumerate", Err: err}
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		p := PortInfo{Name: d.Name, Description: d.Product}
		if d.IsUSB {
			p.VendorID = strings.ToUpper(d.VID)
			p.ProductID = strings.ToUpper(d.PID)
		}
		ports = append(ports, p)
	}
	return ports, nil
}

// FindDevicePort returns the name of the first port matching the bridge's
// identity: a description of exactly "USB Serial Port (<name>)" for the
// port's own name, the FTDI vendor and product IDs, and the FTDI
// manufacturer string. Not every platform exposes a manufacturer string
// through enumeration; when the field is empty the criterion is waived (and
// logged), since the FTDI vendor ID already pins the manufacturer. A
// non-empty field naming anyone else still disqualifies the candidate.
//
// Candidates missing the description or the USB IDs are skipped, not
// failed; skips are logged and counted so a near-miss is visible. No match
// returns ("", false) and is not an error — the caller decides what that
// means.
func FindDevicePort(ports []PortInfo, logger *zap.Logger) (string, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}

	skipped := 0
	for _, p := range ports {
		if p.Description == "" || p.VendorID == "" || p.ProductID == "" {
			skipped++
			logger.Debug("skipping candidate with incomplete metadata",
				zap.String("port", p.Name),
			)
			continue
		}
		if p.Manufacturer != "" && p.Manufacturer != DeviceManufacturer {
			continue
		}

		if p.Description == fmt.Sprintf("USB Serial Port (%s)", p.Name) &&
			p.VendorID == DeviceVendorID &&
			p.ProductID == DeviceProductID {
			if p.Manufacturer == "" {
				logger.Debug("manufacturer string not exposed by this platform, matching on USB IDs",
					zap.String("port", p.Name),
				)
			}
			logger.Info("device port found", zap.String("port", p.Name))
			return p.Name, true
		}
	}

	if skipped > 0 {
		logger.Info("candidates skipped during discovery",
			zap.Int("skipped", skipped),
			zap.Int("total", len(ports)),
		)
	}
	return "", false
}

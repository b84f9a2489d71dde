package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func bridgePort(name string) PortInfo {
	return PortInfo{
		Name:         name,
		Description:  "USB Serial Port (" + name + ")",
		VendorID:     DeviceVendorID,
		ProductID:    DeviceProductID,
		Manufacturer: DeviceManufacturer,
	}
}

func TestFindDevicePort(t *testing.T) {
	tests := []struct {
		name     string
		ports    []PortInfo
		wantName string
		wantOK   bool
	}{
		{
			name:     "single match",
			ports:    []PortInfo{bridgePort("COM5")},
			wantName: "COM5",
			wantOK:   true,
		},
		{
			// A bridge exactly as ListPorts maps an enumerated port: the
			// enumerator exposes no manufacturer string, so the field is empty.
			name: "match without manufacturer field",
			ports: []PortInfo{{
				Name:        "COM5",
				Description: "USB Serial Port (COM5)",
				VendorID:    DeviceVendorID,
				ProductID:   DeviceProductID,
			}},
			wantName: "COM5",
			wantOK:   true,
		},
		{
			name:     "first of two matches wins",
			ports:    []PortInfo{bridgePort("COM3"), bridgePort("COM5")},
			wantName: "COM3",
			wantOK:   true,
		},
		{
			name: "match after incomplete candidates",
			ports: []PortInfo{
				{Name: "COM1"}, // built-in port, no USB metadata
				{Name: "COM2", Description: "Some Modem", VendorID: "1A2B"},
				bridgePort("COM7"),
			},
			wantName: "COM7",
			wantOK:   true,
		},
		{
			name: "wrong vendor ID",
			ports: []PortInfo{{
				Name:         "COM5",
				Description:  "USB Serial Port (COM5)",
				VendorID:     "10C4",
				ProductID:    DeviceProductID,
				Manufacturer: DeviceManufacturer,
			}},
			wantOK: false,
		},
		{
			name: "missing manufacturer does not waive the USB IDs",
			ports: []PortInfo{{
				Name:        "COM5",
				Description: "USB Serial Port (COM5)",
				VendorID:    DeviceVendorID,
				ProductID:   "6015",
			}},
			wantOK: false,
		},
		{
			name: "wrong manufacturer",
			ports: []PortInfo{{
				Name:         "COM5",
				Description:  "USB Serial Port (COM5)",
				VendorID:     DeviceVendorID,
				ProductID:    DeviceProductID,
				Manufacturer: "Prolific",
			}},
			wantOK: false,
		},
		{
			name: "description names a different port",
			ports: []PortInfo{{
				Name:         "COM5",
				Description:  "USB Serial Port (COM4)",
				VendorID:     DeviceVendorID,
				ProductID:    DeviceProductID,
				Manufacturer: DeviceManufacturer,
			}},
			wantOK: false,
		},
		{
			name:   "no ports",
			ports:  nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindDevicePort(tt.ports, zap.NewNop())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, got)
		})
	}
}

func TestFindDevicePortNilLogger(t *testing.T) {
	got, ok := FindDevicePort([]PortInfo{bridgePort("COM5")}, nil)
	assert.True(t, ok)
	assert.Equal(t, "COM5", got)
}

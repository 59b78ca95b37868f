// Copyright (c) 2026 The Hantek2D72 developers. All rights reserved.
// Project site: https://github.com/pablogventura/Hantek2D72
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hantek2d72

import (
	"fmt"
	"log"
	"time"

	"github.com/gotmc/libusb"
)

const (
	vendorID  = 0x0483
	productID = 0x2d42

	// Bulk endpoint addresses fixed by the instrument firmware.
	commandEndpointAddress = 0x02
	dataEndpointAddress    = 0x81

	defaultTimeout = 2000
	msSleepTime    = 100
)

// Transport defines the device surface needed to drive the instrument.
type Transport interface {
	SendCommandToDevice(cmd Command) (int, error)
	Read(p []byte) (n int, err error)
}

// Hantek2D72 models the USB-attached Hantek 2D72 bench instrument.
type Hantek2D72 struct {
	Timeout          int
	Device           *libusb.Device
	DeviceDescriptor *libusb.DeviceDescriptor
	DeviceHandle     *libusb.DeviceHandle
	ConfigDescriptor *libusb.ConfigDescriptor
	CommandEndpoint  *libusb.EndpointDescriptor
	DataEndpoint     *libusb.EndpointDescriptor
}

// Init intializes a new libusb session/context by creating a new Context and
// returning a pointer to that Context.
func Init() (*libusb.Context, error) {
	return libusb.NewContext()
}

// NewViaSN creates a new instrument instance by searching through the list
// of USB devices for the given serial number.
func NewViaSN(ctx *libusb.Context, sn string) (*Hantek2D72, error) {
	var dso Hantek2D72
	usbDevices, err := ctx.GetDeviceList()
	if err != nil {
		return &dso, fmt.Errorf("Error getting USB device list: %s", err)
	}
	// Search through the USB devices looking for serial number
	for _, usbDevice := range usbDevices {
		usbDeviceDescriptor, err := usbDevice.GetDeviceDescriptor()
		if err != nil {
			return &dso, fmt.Errorf("Error getting device descriptor: %s", err)
		}
		// Check the VendorID and Product ID. If those don't equate to the
		// Hantek 2D72, then there's no reason to open the device and read its
		// S/N.
		if usbDeviceDescriptor.VendorID == vendorID &&
			usbDeviceDescriptor.ProductID == productID {
			usbDeviceHandle, err := usbDevice.Open()
			if err != nil {
				return &dso, fmt.Errorf("Error getting device handle: %s", err)
			}
			serialNum, err := usbDeviceHandle.GetStringDescriptorASCII(
				usbDeviceDescriptor.SerialNumberIndex)
			if err != nil {
				return &dso, fmt.Errorf("Error reading S/N: %s", err)
			}
			if serialNum == sn {
				log.Printf("Found S/N %s. Creating device", sn)
				return create(usbDevice, usbDeviceHandle)
			}
			usbDeviceHandle.Close()
		}
	}
	return &dso, fmt.Errorf("couldn't find instrument %s", sn)
}

// GetFirstDevice creates a new instrument instance using the first Hantek
// 2D72 found in the USB context.
func GetFirstDevice(ctx *libusb.Context) (*Hantek2D72, error) {
	var dso Hantek2D72
	dev, dh, err := ctx.OpenDeviceWithVendorProduct(vendorID, productID)
	if err != nil {
		return &dso, fmt.Errorf("error opening the instrument, %s", err)
	}
	return create(dev, dh)
}

func create(dev *libusb.Device, dh *libusb.DeviceHandle) (*Hantek2D72, error) {
	var dso Hantek2D72
	err := dh.ClaimInterface(0)
	if err != nil {
		return &dso, fmt.Errorf("Error claiming the bulk interface %s", err)
	}
	dso.Timeout = defaultTimeout
	dso.Device = dev
	dso.DeviceHandle = dh
	deviceDescriptor, err := dso.Device.GetDeviceDescriptor()
	if err != nil {
		return &dso, fmt.Errorf("Error getting device descriptor %s", err)
	}
	dso.DeviceDescriptor = deviceDescriptor
	configDescriptor, err := dso.Device.GetActiveConfigDescriptor()
	if err != nil {
		return &dso, fmt.Errorf("Error getting active config descriptor. %s", err)
	}
	dso.ConfigDescriptor = configDescriptor
	firstDescriptor := configDescriptor.SupportedInterfaces[0].InterfaceDescriptors[0]
	for _, endpoint := range firstDescriptor.EndpointDescriptors {
		switch byte(endpoint.EndpointAddress) {
		case commandEndpointAddress:
			dso.CommandEndpoint = endpoint
		case dataEndpointAddress:
			dso.DataEndpoint = endpoint
		}
	}
	if dso.CommandEndpoint == nil || dso.DataEndpoint == nil {
		return &dso, fmt.Errorf("couldn't find bulk endpoints 0x%02x and 0x%02x",
			commandEndpointAddress, dataEndpointAddress)
	}
	return &dso, nil
}

// Close implements the Closer interface for Hantek2D72.
func (dso *Hantek2D72) Close() error {
	// Release the interface and close up shop
	err := dso.DeviceHandle.ReleaseInterface(0)
	if err != nil {
		return fmt.Errorf("Error releasing interface %s", err)
	}
	time.Sleep(msSleepTime * time.Millisecond)
	dso.DeviceHandle.Close()
	return nil
}

// SendCommandToDevice encodes the given command into its 10-byte wire frame
// and writes it to the bulk command endpoint. It returns the number of
// bytes written.
func (dso *Hantek2D72) SendCommandToDevice(cmd Command) (int, error) {
	frame, err := cmd.MarshalBinary()
	if err != nil {
		return 0, err
	}
	bytesWritten, err := dso.DeviceHandle.BulkTransfer(
		dso.CommandEndpoint.EndpointAddress,
		frame,
		len(frame),
		dso.Timeout,
	)
	if err != nil {
		return bytesWritten, fmt.Errorf("error sending command '%s' to device: %s", cmd, err)
	}
	return bytesWritten, nil
}

// Read reads capture data from the bulk data endpoint.
func (dso *Hantek2D72) Read(p []byte) (n int, err error) {
	return dso.DeviceHandle.BulkTransfer(
		dso.DataEndpoint.EndpointAddress,
		p,
		len(p),
		dso.Timeout,
	)
}

package device

import (
	"fmt"
	"net"
	"strconv"

	"github.com/SiirRandall/ecc-tray/internal/colorspace"
)

// Endpoint is the light's network address. It is fixed for the life of the process.
type Endpoint struct {
	IP   string
	Port int
}

func (e Endpoint) String() string { return net.JoinHostPort(e.IP, strconv.Itoa(e.Port)) }

// Command is an argv for the control binary plus the text shown when it succeeds.
type Command struct {
	Args        []string
	Description string
}

// Client builds control-binary invocations for one endpoint.
type Client struct {
	binary string
	target Endpoint
}

func New(binary string, target Endpoint) *Client {
	return &Client{binary: binary, target: target}
}

func (c *Client) Target() Endpoint { return c.target }

func (c *Client) command(desc string, flags ...string) Command {
	args := make([]string, 0, 5+len(flags))
	args = append(args, c.binary, "--ip", c.target.IP, "--port", strconv.Itoa(c.target.Port))
	args = append(args, flags...)
	return Command{Args: args, Description: desc}
}

func (c *Client) TogglePower() Command {
	return c.command("Toggling Power", "--toggle")
}

// SetColor sends hue and saturation; lightness is left to the brightness control.
func (c *Client) SetColor(rgb colorspace.RGB, label string) Command {
	hsl := colorspace.ToHSL(rgb)
	return c.command("Changing Color to "+label,
		"--hue", formatFloat(hsl.H),
		"--saturation", formatFloat(hsl.S),
	)
}

// SetTemperature reports the Kelvin preset in its description; the device only sees native units.
func (c *Client) SetTemperature(kelvin int) Command {
	return c.command(fmt.Sprintf("Setting Temperature to %dK", kelvin),
		"--temperature", strconv.Itoa(NativeTemperature(kelvin)))
}

func (c *Client) SetBrightness(percent int) Command {
	return c.command(fmt.Sprintf("Setting Brightness to %d", percent),
		"--brightness", strconv.Itoa(percent))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

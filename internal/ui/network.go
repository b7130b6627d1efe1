package ui

import (
	"fmt"
	"net"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

// Database refreshes and thumbnail fetches need the network, so the footer
// keeps a live online/traffic readout. Connectivity is judged from local
// interface state; no packets are sent out.

// virtualPrefixes names loopback and virtual interfaces whose counters would
// count local chatter (Docker, VMs, multicast) as real traffic.
var virtualPrefixes = []string{"lo", "docker", "veth", "br-", "vbox", "vmnet", "tailscale", "tun", "tap"}

func checkNetworkStatus() tea.Cmd {
	return func() tea.Msg {
		return sampleNetwork()
	}
}

func networkTick() tea.Cmd {
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return sampleNetwork()
	})
}

// sampleNetwork samples online state plus the byte counters of the physical
// interfaces.
func sampleNetwork() networkStatusMsg {
	msg := networkStatusMsg{online: localOnline(), t: time.Now()}

	perIface, err := gopsutil_net.IOCounters(true)
	if err != nil {
		msg.err = err
		return msg
	}

	for _, c := range perIface {
		if isVirtualInterface(c.Name) {
			continue
		}
		msg.counters.BytesSent += c.BytesSent
		msg.counters.BytesRecv += c.BytesRecv
	}
	return msg
}

func isVirtualInterface(name string) bool {
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// localOnline reports whether any up, non-loopback interface carries a global
// unicast address. APIPA addresses (169.254.0.0/16) are excluded: they mean
// no DHCP answered, so there is no real upstream.
func localOnline() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if (iface.Flags&net.FlagUp) == 0 || (iface.Flags&net.FlagLoopback) != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok || ipNet.IP == nil {
				continue
			}
			ip := ipNet.IP
			ip4 := ip.To4()
			apipa := ip4 != nil && ip4[0] == 169 && ip4[1] == 254
			if ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast() && !apipa {
				return true
			}
		}
	}
	return false
}

func formatTraffic(bps float64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case bps > mb:
		return fmt.Sprintf("%.2f MB/s", bps/mb)
	case bps > kb:
		return fmt.Sprintf("%.2f KB/s", bps/kb)
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}

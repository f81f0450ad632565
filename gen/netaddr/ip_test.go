package netaddr_test

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/mkeeler/fixture-data/gen/netaddr"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/stretchr/testify/require"
)

func TestIP_DefaultPrefix(t *testing.T) {
	prefix := netip.MustParsePrefix("198.18.0.0/15")
	for i := 0; i < 100; i++ {
		addr, err := netaddr.IP(fmt.Sprintf("ip-%d", i))
		require.NoError(t, err)
		require.True(t, prefix.Contains(addr), "%s outside %s", addr, prefix)
	}
}

func TestIP_Deterministic(t *testing.T) {
	first, err := netaddr.IP("ip1")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := netaddr.IP("ip1")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestIP_CustomPrefix(t *testing.T) {
	type testcase struct {
		prefix string
	}
	testcases := map[string]testcase{
		"ipv4 /24":      {prefix: "10.9.8.0/24"},
		"ipv4 /31":      {prefix: "10.9.8.6/31"},
		"ipv4 full bit": {prefix: "172.16.0.0/12"},
		"ipv6 /64":      {prefix: "2001:db8::/64"},
		"ipv6 /121":     {prefix: "2001:db8::/121"},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			prefix := netip.MustParsePrefix(tc.prefix)
			g := netaddr.NewIPGenerator(netaddr.WithPrefix(prefix))
			for i := 0; i < 50; i++ {
				addr, err := g.Generate(fmt.Sprintf("ip-%d", i))
				require.NoError(t, err)
				require.True(t, prefix.Contains(addr), "%s outside %s", addr, prefix)
			}
		})
	}
}

func TestIP_HostBitsVary(t *testing.T) {
	prefix := netip.MustParsePrefix("10.0.0.0/24")
	g := netaddr.NewIPGenerator(netaddr.WithPrefix(prefix))

	seen := make(map[netip.Addr]struct{})
	for i := 0; i < 200; i++ {
		addr, err := g.Generate(fmt.Sprintf("ip-%d", i))
		require.NoError(t, err)
		seen[addr] = struct{}{}
	}
	// 200 draws over 256 host addresses should cover well over half of them.
	require.Greater(t, len(seen), 100)
}

func TestIP_DeriveRendersString(t *testing.T) {
	g := netaddr.NewTestingIPv4Generator()

	var m maker.Maker = g
	out, err := maker.Generate(m, "ip1")
	require.NoError(t, err)

	s, ok := out.(string)
	require.True(t, ok)

	addr, err := netip.ParseAddr(s)
	require.NoError(t, err)

	direct, err := g.Generate("ip1")
	require.NoError(t, err)
	require.Equal(t, direct, addr)
}

func TestIP_InvalidPrefix(t *testing.T) {
	_, err := netaddr.IP("ip1", netaddr.WithPrefix(netip.Prefix{}))
	require.ErrorIs(t, err, maker.ErrConfig)
}

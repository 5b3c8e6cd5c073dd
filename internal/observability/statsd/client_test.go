package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listenUDP binds an ephemeral UDP socket and returns its address plus a
// function that reads one datagram.
func listenUDP(t *testing.T) (string, func() string) {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	read := func() string {
		buf := make([]byte, 1024)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		n, _, err := conn.ReadFrom(buf)
		require.NoError(t, err)
		return string(buf[:n])
	}
	return conn.LocalAddr().String(), read
}

func TestClient_Count(t *testing.T) {
	addr, read := listenUDP(t)

	c, err := NewClient(Config{Address: addr, Prefix: "tweakd"})
	require.NoError(t, err)
	defer c.Close()

	c.Count("login.attempts", 1, nil)
	assert.Equal(t, "tweakd.login.attempts:1|c", read())
}

func TestClient_CountWithTags(t *testing.T) {
	addr, read := listenUDP(t)

	c, err := NewClient(Config{Address: addr, Prefix: "tweakd"})
	require.NoError(t, err)
	defer c.Close()

	c.Count("login.outcomes", 1, map[string]string{"outcome": "cancelled", "attempt": "a1"})
	assert.Equal(t, "tweakd.login.outcomes:1|c|#attempt:a1,outcome:cancelled", read())
}

func TestClient_Timing(t *testing.T) {
	addr, read := listenUDP(t)

	c, err := NewClient(Config{Address: addr, Prefix: "tweakd"})
	require.NoError(t, err)
	defer c.Close()

	c.Timing("tweak.duration", 1500*time.Millisecond, nil)
	assert.Equal(t, "tweakd.tweak.duration:1500|ms", read())
}

func TestClient_DisabledWithoutAddress(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	// Must be a silent no-op.
	c.Count("login.attempts", 1, nil)
	require.NoError(t, c.Close())
}

func TestClient_NilIsNoop(t *testing.T) {
	var c *Client
	c.Count("x", 1, nil)
	c.Timing("y", time.Second, nil)
	assert.NoError(t, c.Close())
}

func TestNormalizeMetricName(t *testing.T) {
	assert.Equal(t, "a.b_c", normalizeMetricName(" a..b c"))
	assert.Equal(t, "", normalizeMetricName("  "))
}

package httpx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDetails(t *testing.T) {
	require.Equal(t, json.RawMessage(`{"message":"bad"}`), Details([]byte(`{"message":"bad"}`)))
	require.Equal(t, "upstream exploded", Details([]byte("upstream exploded")))
	require.Equal(t, "", Details(nil))
}

func TestNewClient(t *testing.T) {
	c := NewClient(3 * time.Second)
	require.Equal(t, 3*time.Second, c.Timeout)
	require.NotNil(t, c.Transport)
}

package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"main/internal/adapter/enum"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadResolvesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"gateway": {"url": "ws://localhost:8899", "clientId": 7},
		"account": "DU12345",
		"portfolio": [
			{"ticker": "AVUV", "weight": 0.5},
			{"ticker": "AVDV", "weight": 0.5}
		]
	}`)

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "ws://localhost:8899", loaded.Gateway.URL)
	require.Equal(t, 7, loaded.Gateway.ClientID)
	require.Equal(t, "DU12345", loaded.AccountID)
	require.Equal(t, 1.5, loaded.Rebalance.LowLeverage)
	require.Equal(t, 1.9, loaded.Rebalance.HighLeverage)
	require.Equal(t, 2000.0, loaded.Rebalance.TargetDollar)
	require.Equal(t, enum.OrderUrgencyPatient, loaded.Rebalance.Urgency)
	require.Equal(t, 20*time.Second, loaded.PollTimeout)
	require.Nil(t, loaded.Postgres)
	require.Nil(t, loaded.Profiling)

	symbols := loaded.Portfolio.Symbols()
	require.Len(t, symbols, 2)
	require.Equal(t, "SMART", symbols[0].Venue)
	require.Equal(t, "USD", symbols[0].Currency)
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"gateway": {"url": "ws://localhost:8899"},
		"account": "DU12345",
		"portfolio": [{"ticker": "AVUV", "weight": 1.0}],
		"rebalance": {
			"lowLeverage": 1.2,
			"highLeverage": 1.6,
			"targetDollar": 5000,
			"urgency": "Urgent",
			"pollTimeoutSeconds": 5
		},
		"window": {"timezone": "UTC", "startHour": 14, "endHour": 18},
		"postgres": {"host": "db", "port": 5433, "user": "rebal", "database": "journal"}
	}`)

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 1.2, loaded.Rebalance.LowLeverage)
	require.Equal(t, 1.6, loaded.Rebalance.HighLeverage)
	require.Equal(t, 5000.0, loaded.Rebalance.TargetDollar)
	require.Equal(t, enum.OrderUrgencyUrgent, loaded.Rebalance.Urgency)
	require.Equal(t, 5*time.Second, loaded.PollTimeout)

	require.NotNil(t, loaded.Postgres)
	require.Equal(t, "db", loaded.Postgres.Host)
	require.Equal(t, 5433, loaded.Postgres.Port)

	// Monday 15:00 UTC is inside the overridden window.
	require.True(t, loaded.Window.Open(time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)))
	require.False(t, loaded.Window.Open(time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)))
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := map[string]string{
		"missing gateway url": `{
			"account": "DU12345",
			"portfolio": [{"ticker": "AVUV", "weight": 1.0}]
		}`,
		"missing account": `{
			"gateway": {"url": "ws://localhost:8899"},
			"portfolio": [{"ticker": "AVUV", "weight": 1.0}]
		}`,
		"empty portfolio": `{
			"gateway": {"url": "ws://localhost:8899"},
			"account": "DU12345",
			"portfolio": []
		}`,
		"weights off": `{
			"gateway": {"url": "ws://localhost:8899"},
			"account": "DU12345",
			"portfolio": [{"ticker": "AVUV", "weight": 0.7}]
		}`,
		"inverted band": `{
			"gateway": {"url": "ws://localhost:8899"},
			"account": "DU12345",
			"portfolio": [{"ticker": "AVUV", "weight": 1.0}],
			"rebalance": {"lowLeverage": 2.0, "highLeverage": 1.5}
		}`,
		"unknown urgency": `{
			"gateway": {"url": "ws://localhost:8899"},
			"account": "DU12345",
			"portfolio": [{"ticker": "AVUV", "weight": 1.0}],
			"rebalance": {"urgency": "Reckless"}
		}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

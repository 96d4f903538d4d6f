package ops

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/yanun0323/errors"

	"main/internal/adapter"
	"main/internal/adapter/enum"
	"main/internal/rebal"
	"main/pkg/conn"
)

const defaultPollTimeoutSeconds = 20

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Gateway   GatewayConfig    `json:"gateway"`
	Account   string           `json:"account"`
	Portfolio []HoldingConfig  `json:"portfolio"`
	Rebalance RebalanceConfig  `json:"rebalance"`
	Window    *WindowConfig    `json:"window"`
	Postgres  *PostgresConfig  `json:"postgres"`
	Profiling *ProfilingConfig `json:"profiling"`
}

// GatewayConfig locates the broker gateway daemon.
type GatewayConfig struct {
	URL      string `json:"url"`
	ClientID int    `json:"clientId"`
}

// HoldingConfig describes one portfolio entry.
type HoldingConfig struct {
	Ticker   string  `json:"ticker"`
	Venue    string  `json:"venue"`
	Currency string  `json:"currency"`
	Weight   float64 `json:"weight"`
}

// RebalanceConfig overrides the leverage band and order sizing. Zero
// values fall back to the defaults.
type RebalanceConfig struct {
	LowLeverage        float64 `json:"lowLeverage"`
	HighLeverage       float64 `json:"highLeverage"`
	TargetDollar       float64 `json:"targetDollar"`
	Urgency            string  `json:"urgency"`
	PollTimeoutSeconds int     `json:"pollTimeoutSeconds"`
}

// WindowConfig overrides the trading window.
type WindowConfig struct {
	Timezone  string `json:"timezone"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// PostgresConfig enables the order journal.
type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// ProfilingConfig enables continuous profiling.
type ProfilingConfig struct {
	ServerAddress string `json:"serverAddress"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Gateway     GatewayConfig
	AccountID   string
	Portfolio   *rebal.Portfolio
	Rebalance   rebal.Config
	PollTimeout time.Duration
	Window      rebal.Window
	Postgres    *conn.Option
	Profiling   *ProfilingConfig
}

// Load reads a JSON config file and resolves every section.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read config file")
	}

	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "decode config file")
	}

	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if cfg.Gateway.URL == "" {
		return Loaded{}, errors.New("gateway url is empty")
	}
	if cfg.Account == "" {
		return Loaded{}, errors.New("account is empty")
	}

	portfolio, err := buildPortfolio(cfg.Portfolio)
	if err != nil {
		return Loaded{}, err
	}

	rebalance, pollTimeout, err := resolveRebalance(cfg.Rebalance)
	if err != nil {
		return Loaded{}, err
	}

	window, err := resolveWindow(cfg.Window)
	if err != nil {
		return Loaded{}, err
	}

	loaded := Loaded{
		Gateway:     cfg.Gateway,
		AccountID:   cfg.Account,
		Portfolio:   portfolio,
		Rebalance:   rebalance,
		PollTimeout: pollTimeout,
		Window:      window,
		Profiling:   cfg.Profiling,
	}

	if cfg.Postgres != nil {
		loaded.Postgres = &conn.Option{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
		}
	}

	return loaded, nil
}

func buildPortfolio(cfg []HoldingConfig) (*rebal.Portfolio, error) {
	if len(cfg) == 0 {
		return nil, errors.New("portfolio is empty")
	}

	holdings := make([]rebal.Holding, 0, len(cfg))
	for _, h := range cfg {
		if h.Ticker == "" {
			return nil, errors.New("portfolio entry without ticker")
		}

		venue := h.Venue
		if venue == "" {
			venue = "SMART"
		}
		currency := h.Currency
		if currency == "" {
			currency = "USD"
		}

		holdings = append(holdings, rebal.Holding{
			Symbol: adapter.Symbol{
				Ticker:   h.Ticker,
				Venue:    venue,
				Currency: currency,
			},
			Weight: h.Weight,
		})
	}

	return rebal.NewPortfolio(holdings)
}

func resolveRebalance(cfg RebalanceConfig) (rebal.Config, time.Duration, error) {
	resolved := rebal.DefaultConfig()

	if cfg.LowLeverage != 0 {
		resolved.LowLeverage = cfg.LowLeverage
	}
	if cfg.HighLeverage != 0 {
		resolved.HighLeverage = cfg.HighLeverage
	}
	if resolved.LowLeverage >= resolved.HighLeverage {
		return rebal.Config{}, 0, errors.Errorf("leverage band is inverted: %.2f to %.2f", resolved.LowLeverage, resolved.HighLeverage)
	}

	if cfg.TargetDollar != 0 {
		if cfg.TargetDollar < 0 {
			return rebal.Config{}, 0, errors.New("targetDollar must be positive")
		}
		resolved.TargetDollar = cfg.TargetDollar
	}

	if cfg.Urgency != "" {
		urgency, err := enum.ParseOrderUrgency(cfg.Urgency)
		if err != nil {
			return rebal.Config{}, 0, err
		}
		resolved.Urgency = urgency
	}

	seconds := cfg.PollTimeoutSeconds
	if seconds == 0 {
		seconds = defaultPollTimeoutSeconds
	}
	if seconds < 0 {
		return rebal.Config{}, 0, errors.New("pollTimeoutSeconds must be positive")
	}

	return resolved, time.Duration(seconds) * time.Second, nil
}

func resolveWindow(cfg *WindowConfig) (rebal.Window, error) {
	if cfg == nil {
		return rebal.DefaultWindow(), nil
	}
	return rebal.NewWindow(cfg.Timezone, cfg.StartHour, cfg.EndHour)
}

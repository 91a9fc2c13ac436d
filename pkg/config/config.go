package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Options holds named runtime options loaded from the environment.
type Options struct {
	// IVARate is the fixed value-added tax rate applied when an order
	// is placed (default 16%).
	IVARate decimal.Decimal

	// DecrementStockOnOrder controls whether placing an order also
	// decrements product stock. Off by default: stock decrement during
	// order placement is a documented no-op in this system, not a bug.
	DecrementStockOnOrder bool

	// SMTP relay settings for outbound notification mail
	SMTPHost string
	SMTPPort int
	// EmailUser doubles as the From address
	EmailUser string
	EmailPass string
}

// Load reads options from environment variables, falling back to
// defaults where unset.
func Load() Options {
	opts := Options{
		IVARate:               decimal.NewFromFloat(0.16),
		DecrementStockOnOrder: false,
		SMTPHost:              "smtp.gmail.com",
		SMTPPort:              587,
		EmailUser:             os.Getenv("EMAIL_USER"),
		EmailPass:             os.Getenv("EMAIL_PASS"),
	}

	if rate := os.Getenv("IVA_RATE"); rate != "" {
		if d, err := decimal.NewFromString(rate); err == nil && !d.IsNegative() {
			opts.IVARate = d
		}
	}

	if v := os.Getenv("DECREMENT_STOCK_ON_ORDER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			opts.DecrementStockOnOrder = b
		}
	}

	if host := os.Getenv("SMTP_HOST"); host != "" {
		opts.SMTPHost = host
	}

	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			opts.SMTPPort = port
		}
	}

	return opts
}

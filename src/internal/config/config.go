package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=erp_accounting_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultCurrency = "INR"
const defaultBalanceTolerance = "0.01"

type Config struct {
	DatabaseDSN      string
	MigrationsDir    string
	DefaultCurrency  string
	BalanceTolerance decimal.Decimal
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = filepath.Join("src", "migrations")
	}

	currency := strings.ToUpper(strings.TrimSpace(os.Getenv("DEFAULT_CURRENCY")))
	if currency == "" {
		currency = defaultCurrency
	}

	toleranceRaw := strings.TrimSpace(os.Getenv("BALANCE_TOLERANCE"))
	if toleranceRaw == "" {
		toleranceRaw = defaultBalanceTolerance
	}
	tolerance, err := decimal.NewFromString(toleranceRaw)
	if err != nil || tolerance.IsNegative() {
		tolerance = decimal.RequireFromString(defaultBalanceTolerance)
	}

	return Config{
		DatabaseDSN:      normalizeConnectionString(conn),
		MigrationsDir:    migrationsDir,
		DefaultCurrency:  currency,
		BalanceTolerance: tolerance,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}

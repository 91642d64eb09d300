package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Bank BankConfig
}

type BankConfig struct {
	BranchCode      string
	WithdrawalLimit int64 // per withdrawal, in centavos
	MaxWithdrawals  int   // successful withdrawals per day
}

func Load() *Config {
	return &Config{
		Bank: BankConfig{
			BranchCode:      getEnv("BANK_BRANCH_CODE", "0001"),
			WithdrawalLimit: getEnvAsInt64("BANK_WITHDRAWAL_LIMIT_CENTAVOS", 50000),
			MaxWithdrawals:  getEnvAsInt("BANK_MAX_DAILY_WITHDRAWALS", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

package cmd

import "time"

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	MpesaGatewayBaseURL string
	JWTSecret           string
	PaymentPollInterval time.Duration
	PaymentMaxPolls     int
	PaymentCloseDelay   time.Duration
}

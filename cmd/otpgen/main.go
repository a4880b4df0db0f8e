package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ashquarry/binancewallet/config"
)

// otpgen prints one-time passwords for the configured OTP secret, refreshing
// on the standard 30 second TOTP boundary. Useful for driving automated
// flows that require two-factor confirmation.
func main() {
	var configPath string
	var once bool
	flag.StringVar(&configPath, "config", "", "path to the JSON config file")
	flag.BoolVar(&once, "once", false, "print a single code and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}
	if cfg.VaultFile != "" {
		if err := cfg.UnlockVault(os.Getenv("BINANCEWALLET_VAULT_PASSPHRASE")); err != nil {
			log.Fatalf("unable to unlock vault: %v", err)
		}
	}
	if cfg.Credentials.OTPSecret == "" {
		log.Fatal("no OTP secret configured, set credentials.otpsecret")
	}

	if once {
		code, err := cfg.Credentials.GenerateOTP(time.Now())
		if err != nil {
			log.Fatalf("unable to generate code: %v", err)
		}
		fmt.Println(code)
		return
	}

	for {
		now := time.Now()
		code, err := cfg.Credentials.GenerateOTP(now)
		if err != nil {
			log.Fatalf("unable to generate code: %v", err)
		}
		remaining := 30 - now.Unix()%30
		fmt.Printf("%s (valid for %ds)\n", code, remaining)
		time.Sleep(time.Duration(remaining) * time.Second)
	}
}

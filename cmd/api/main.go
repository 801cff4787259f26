package main

import (
	"os"

	"webpay_gateway/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title           Web Payment Gateway API
// @version         1.0
// @description     Web payment initiation, verification, refunds and gateway callbacks.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "webpay",
		Short: "Web payment gateway integration",
	}

	rootCmd.AddCommand(
		cli.NewServeCommand(),
		cli.NewVerifyCommand(),
		cli.NewRefundCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

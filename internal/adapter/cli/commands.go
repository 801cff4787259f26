package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	response "webpay_gateway/internal/adapter/http/dto/response"
	"webpay_gateway/internal/adapter/http/routes"
	"webpay_gateway/internal/bootstrap"
	"webpay_gateway/internal/config"
	"webpay_gateway/internal/domain/entities"
	"webpay_gateway/internal/logger"
	"webpay_gateway/internal/usecase"

	"github.com/spf13/cobra"
)

const gatewayCallTimeout = 30 * time.Second

func loadApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Logger)
	return bootstrap.New(ctx, cfg)
}

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (payments API and gateway callbacks)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			return routes.Run(app)
		},
	}
}

func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Fetch the web payment details for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), gatewayCallTimeout)
			defer cancel()

			result, err := app.Gateway.Verify(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result)
		},
	}
}

func NewRefundCommand() *cobra.Command {
	var (
		comment  string
		sequence int
		amount   int
	)
	cmd := &cobra.Command{
		Use:   "refund <token>",
		Short: "Refund a web payment, fully or partially with --amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), gatewayCallTimeout)
			defer cancel()

			req := usecase.RefundRequest{Token: args[0], Comment: comment, SequenceNumber: sequence}
			if cmd.Flags().Changed("amount") {
				req.Amount = &amount
			}
			result, err := app.Gateway.Refund(ctx, req)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "refund comment sent to the gateway")
	cmd.Flags().IntVar(&sequence, "sequence", 0, "refund sequence number")
	cmd.Flags().IntVar(&amount, "amount", 0, "amount to refund in the smallest currency unit")
	return cmd
}

func printResult(w io.Writer, result entities.GatewayResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response.FromGatewayResult(result)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"license-audit/internal/app"
	"license-audit/internal/policies"
)

type validateOptions struct {
	AllowedLicenses string
	BlockedLicenses string
	PolicyFile      string
	OutputFormat    string
	PackageManager  string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the policy configuration without scanning",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.AllowedLicenses, "allowed-licenses", "", "Comma-separated allowed license tokens")
	cmd.Flags().StringVar(&opts.BlockedLicenses, "blocked-licenses", "", "Comma-separated blocked license tokens")
	cmd.Flags().StringVar(&opts.PolicyFile, "policy-file", "", "YAML policy file with allowed/blocked lists")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", "table", "Report format: table, json or sarif")
	cmd.Flags().StringVar(&opts.PackageManager, "package-manager", "auto", "Package manager: npm, yarn, pnpm or auto")
	_ = viper.BindPFlag("allowed_licenses", cmd.Flags().Lookup("allowed-licenses"))
	_ = viper.BindPFlag("blocked_licenses", cmd.Flags().Lookup("blocked-licenses"))
	_ = viper.BindPFlag("policy_file", cmd.Flags().Lookup("policy-file"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := app.NewService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		OutputFormat:    resolveString(cmd, opts.OutputFormat, "output_format", "output-format"),
		PackageManager:  resolveString(cmd, opts.PackageManager, "package_manager", "package-manager"),
		AllowedLicenses: policies.ParseTokens(resolveString(cmd, opts.AllowedLicenses, "allowed_licenses", "allowed-licenses")),
		BlockedLicenses: policies.ParseTokens(resolveString(cmd, opts.BlockedLicenses, "blocked_licenses", "blocked-licenses")),
		PolicyFile:      resolveString(cmd, opts.PolicyFile, "policy_file", "policy-file"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("policy valid: %d allowed, %d blocked tokens\n", result.AllowedTokens, result.BlockedTokens)
	return nil
}

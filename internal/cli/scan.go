package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"license-audit/internal/adapters"
	"license-audit/internal/app"
	"license-audit/internal/policies"
)

type scanOptions struct {
	Path             string
	AllowedLicenses  string
	BlockedLicenses  string
	PolicyFile       string
	FailOnBlocked    bool
	IncludeDev       bool
	OutputFormat     string
	OutputDir        string
	PackageManager   string
	CreateIssue      bool
	GitHubToken      string
	GitHubRepository string
	GitHubAPIURL     string
	OutputsFile      string
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Audit dependency licenses against the policy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Path, "path", ".", "Project directory to scan")
	cmd.Flags().StringVar(&opts.AllowedLicenses, "allowed-licenses", "", "Comma-separated allowed license tokens")
	cmd.Flags().StringVar(&opts.BlockedLicenses, "blocked-licenses", "", "Comma-separated blocked license tokens")
	cmd.Flags().StringVar(&opts.PolicyFile, "policy-file", "", "YAML policy file with allowed/blocked lists")
	cmd.Flags().BoolVar(&opts.FailOnBlocked, "fail-on-blocked", true, "Exit nonzero when violations exist")
	cmd.Flags().BoolVar(&opts.IncludeDev, "include-dev-dependencies", false, "Include development dependencies")
	cmd.Flags().StringVar(&opts.OutputFormat, "output-format", "table", "Report format: table, json or sarif")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", ".", "Directory for the report artifact")
	cmd.Flags().StringVar(&opts.PackageManager, "package-manager", "auto", "Package manager: npm, yarn, pnpm or auto")
	cmd.Flags().BoolVar(&opts.CreateIssue, "create-issue", false, "File a tracker issue when violations exist")
	cmd.Flags().StringVar(&opts.GitHubToken, "github-token", "", "Token for issue creation")
	cmd.Flags().StringVar(&opts.GitHubRepository, "github-repository", "", "Repository (owner/name) for issue creation")
	cmd.Flags().StringVar(&opts.GitHubAPIURL, "github-api-url", "", "GitHub API base URL")
	cmd.Flags().StringVar(&opts.OutputsFile, "outputs-file", "", "File receiving key=value run outputs (defaults to $GITHUB_OUTPUT)")
	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("allowed_licenses", cmd.Flags().Lookup("allowed-licenses"))
	_ = viper.BindPFlag("blocked_licenses", cmd.Flags().Lookup("blocked-licenses"))
	_ = viper.BindPFlag("policy_file", cmd.Flags().Lookup("policy-file"))
	_ = viper.BindPFlag("fail_on_blocked", cmd.Flags().Lookup("fail-on-blocked"))
	_ = viper.BindPFlag("include_dev_dependencies", cmd.Flags().Lookup("include-dev-dependencies"))
	_ = viper.BindPFlag("output_format", cmd.Flags().Lookup("output-format"))
	_ = viper.BindPFlag("output_dir", cmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("package_manager", cmd.Flags().Lookup("package-manager"))
	_ = viper.BindPFlag("create_issue", cmd.Flags().Lookup("create-issue"))
	_ = viper.BindPFlag("github_token", cmd.Flags().Lookup("github-token"))
	_ = viper.BindPFlag("github_repository", cmd.Flags().Lookup("github-repository"))
	_ = viper.BindPFlag("github_api_url", cmd.Flags().Lookup("github-api-url"))
	_ = viper.BindPFlag("outputs_file", cmd.Flags().Lookup("outputs-file"))
	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, opts scanOptions) error {
	service := newAppService(cmd, opts)
	result, err := service.Scan(ctx, app.ScanRequest{
		Path:                   resolveString(cmd, opts.Path, "path", "path"),
		PackageManager:         resolveString(cmd, opts.PackageManager, "package_manager", "package-manager"),
		AllowedLicenses:        policies.ParseTokens(resolveString(cmd, opts.AllowedLicenses, "allowed_licenses", "allowed-licenses")),
		BlockedLicenses:        policies.ParseTokens(resolveString(cmd, opts.BlockedLicenses, "blocked_licenses", "blocked-licenses")),
		PolicyFile:             resolveString(cmd, opts.PolicyFile, "policy_file", "policy-file"),
		IncludeDevDependencies: resolveBool(cmd, opts.IncludeDev, "include_dev_dependencies", "include-dev-dependencies"),
		OutputFormat:           resolveString(cmd, opts.OutputFormat, "output_format", "output-format"),
		OutputDir:              resolveString(cmd, opts.OutputDir, "output_dir", "output-dir"),
		FailOnBlocked:          resolveBool(cmd, opts.FailOnBlocked, "fail_on_blocked", "fail-on-blocked"),
		CreateIssue:            resolveBool(cmd, opts.CreateIssue, "create_issue", "create-issue"),
	})
	if result.ReportPath != "" {
		fmt.Printf("report written: %s\n", result.ReportPath)
		fmt.Printf("violations=%d allowed=%d unknown=%d\n",
			result.Report.Summary.Violations,
			result.Report.Summary.Allowed,
			result.Report.Summary.Unknown)
	}
	return err
}

func newAppService(cmd *cobra.Command, opts scanOptions) app.Service {
	service := app.NewService()

	outputsFile := resolveString(cmd, opts.OutputsFile, "outputs_file", "outputs-file")
	if outputsFile == "" {
		outputsFile = os.Getenv("GITHUB_OUTPUT")
	}
	service.RunOutputs = adapters.NewRunOutputsAdapter(outputsFile)

	repository := resolveString(cmd, opts.GitHubRepository, "github_repository", "github-repository")
	if repository == "" {
		repository = os.Getenv("GITHUB_REPOSITORY")
	}
	token := resolveString(cmd, opts.GitHubToken, "github_token", "github-token")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	service.IssueCreator = adapters.NewGitHubIssueAdapter(
		resolveString(cmd, opts.GitHubAPIURL, "github_api_url", "github-api-url"),
		repository,
		token,
	)
	return service
}

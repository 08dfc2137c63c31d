package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"termcalc/internal/domain"
)

// healthCheckCmd represents the health-check command
var healthCheckCmd = &cobra.Command{
	Use:   "health-check",
	Short: "Run environment and engine diagnostics",
	Long: `Run diagnostics to validate the configuration and runtime environment.

This command checks:
• Configuration file validity
• Terminal capabilities (interactive input, styled output)
• Arithmetic engine self-test
• Result formatting round-trip`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := App(cmd)
		a.Terminal.Banner("System Health Check")

		checks := []domain.HealthCheck{checkConfig(a), checkTTY()}
		checks = append(checks, a.Calc.HealthCheck()...)

		a.Terminal.Section("Detailed Results")
		a.Terminal.HealthCheckTable(checks)

		passed, warnings, failed := 0, 0, 0
		for _, check := range checks {
			switch check.Status {
			case domain.StatusOK:
				passed++
			case domain.StatusWarn:
				warnings++
			case domain.StatusError:
				failed++
			}
		}

		a.Terminal.Section("Health Check Summary")
		switch {
		case failed > 0:
			a.Terminal.Error(fmt.Sprintf("%d checks failed", failed))
			if passed > 0 {
				a.Terminal.Success(fmt.Sprintf("%d checks passed", passed))
			}
			return fmt.Errorf("health check failed: %d checks failed", failed)
		case warnings > 0:
			a.Terminal.Warning(fmt.Sprintf("%d warnings found", warnings))
			a.Terminal.Success(fmt.Sprintf("%d checks passed", passed))
		default:
			a.Terminal.Success(fmt.Sprintf("All %d checks passed.", passed))
		}
		return nil
	},
}

// checkConfig re-validates the loaded configuration
func checkConfig(a *AppContainer) domain.HealthCheck {
	if err := a.Config.Validate(); err != nil {
		return domain.HealthCheck{Name: "Configuration", Status: domain.StatusError, Message: err.Error()}
	}
	return domain.HealthCheck{Name: "Configuration", Status: domain.StatusOK, Message: "Valid"}
}

// checkTTY reports whether the session will run interactively
func checkTTY() domain.HealthCheck {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return domain.HealthCheck{Name: "Terminal", Status: domain.StatusOK, Message: "Interactive"}
	}
	return domain.HealthCheck{
		Name:    "Terminal",
		Status:  domain.StatusWarn,
		Message: "Not a terminal, output will be plain text",
	}
}

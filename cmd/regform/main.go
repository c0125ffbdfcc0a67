// Package main provides a command line front end for the registration form.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"watermyplants/internal/client"
	"watermyplants/internal/config"
	"watermyplants/internal/domain"
	"watermyplants/internal/phone"
	"watermyplants/internal/repository/journal"
	"watermyplants/internal/service"
	"watermyplants/internal/strength"
	"watermyplants/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errFormDirty = errors.New("form has validation errors")

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// formFlags are the field values given on the command line
type formFlags struct {
	username       string
	email          string
	phone          string
	password       string
	verifyPassword string
	score          int
	outputJSON     bool
}

func (f *formFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.username, "username", "", "Username (letters, digits, - and _)")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "North American phone number (optional)")
	cmd.Flags().StringVar(&f.password, "password", "", "Password")
	cmd.Flags().StringVar(&f.verifyPassword, "verify-password", "", "Password again")
	cmd.Flags().IntVar(&f.score, "score", -1, "Password strength 0-4 (estimated when omitted)")
	cmd.Flags().BoolVar(&f.outputJSON, "json", false, "Output validation errors as JSON")
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regform",
		Short: "Validate and submit Water My Plants registrations",
		Long: `Fill the Water My Plants registration form from flags.

Examples:
  regform validate --username bob-1 --email bob@example.com --password 'Tr0ub4dor&3' --verify-password 'Tr0ub4dor&3'
  regform submit --username bob-1 --email bob@example.com --phone 4155551234 --password ... --verify-password ...
`,
		SilenceUsage: true,
	}

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(submitCmd())

	return cmd
}

func validateCmd() *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Print the validation errors of a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := fillForm(&flags, formDeps(nil, zap.NewNop()))
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), form, flags.outputJSON)
		},
	}
	flags.bind(cmd)

	return cmd
}

func submitCmd() *cobra.Command {
	var (
		flags   formFlags
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate a form and send it when it is clean",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			registrar := client.NewHTTPRegistrar(url, timeout)
			defer registrar.Close()

			form, err := fillForm(&flags, formDeps(registrar, logger))
			if err != nil {
				return err
			}
			if err := report(cmd.OutOrStdout(), form, flags.outputJSON); err != nil {
				return err
			}

			form.OnSubmit(cmd.Context())
			form.Wait()
			return nil
		},
	}
	flags.bind(cmd)

	cfg, err := config.Load()
	defaultURL, defaultTimeout := client.DefaultRegisterURL, 10*time.Second
	if err == nil {
		defaultURL, defaultTimeout = cfg.Register.URL, cfg.Register.Timeout
	}
	cmd.Flags().StringVar(&url, "url", defaultURL, "Registration endpoint")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Request timeout")

	return cmd
}

func formDeps(registrar client.Registrar, logger *zap.Logger) service.FormDeps {
	return service.FormDeps{
		Validator: validation.New(),
		Registrar: registrar,
		Journal:   journal.NewLogRepo(logger),
		Estimator: strength.NewZxcvbn(),
		Logger:    logger,
	}
}

// fillForm replays the flags as form events, in the order a user would
// fill the fields
func fillForm(flags *formFlags, deps service.FormDeps) (*service.FormService, error) {
	form := service.NewFormService(deps, 0)

	steps := []func() error{
		func() error { return form.OnFieldChange(domain.FieldUsername, flags.username) },
		func() error { return form.OnFieldChange(domain.FieldEmail, flags.email) },
		func() error { return form.OnPhoneChange(phone.NewNANPFormatter().Format(flags.phone)) },
		func() error { return form.OnPasswordChange(flags.password) },
		func() error { return form.OnFieldChange(domain.FieldVerifyPassword, flags.verifyPassword) },
	}
	if flags.score >= 0 {
		steps = append(steps, func() error { return form.OnPasswordScoreChange(flags.score) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// report prints the field errors and fails when there are any
func report(w io.Writer, form *service.FormService, outputJSON bool) error {
	errs := form.Errors()

	if outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(errs); err != nil {
			return fmt.Errorf("failed to encode errors: %w", err)
		}
	} else {
		for _, field := range domain.Fields {
			if msg, ok := errs[field]; ok {
				fmt.Fprintf(w, "%-16s %s\n", field.DisplayName()+":", msg)
			}
		}
		if errs.Empty() {
			fmt.Fprintln(w, "Form is valid")
		}
	}

	if !errs.Empty() {
		return fmt.Errorf("%w: %d field(s)", errFormDirty, len(errs))
	}
	return nil
}

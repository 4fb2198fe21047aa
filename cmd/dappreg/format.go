package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/resolver"
)

func newFormatCmd(a *app) *cobra.Command {
	var calls []string

	cmd := &cobra.Command{
		Use:   "format [message]",
		Short: "Resolve a contract failure trace",
		Long: `Resolve a raw contract failure trace into a readable message.

The trace is read from standard input when no argument is given. Calls made by
the failing transaction are passed with --call as address:entrypoint, with an
optional third part holding comma separated calldata.`,
		Example: `  dappreg format --call 0x10884:swap "$(cat trace.txt)"
  starknet-cli invoke ... 2>&1 | dappreg format -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := readMessage(a.in, args)
			if err != nil {
				return err
			}

			parsed, err := parseCalls(calls)
			if err != nil {
				return err
			}

			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := resolver.New(reg, resolver.WithLogger(a.logger)).FormatError(message, parsed...)
			if err != nil {
				return err
			}

			r := a.renderer()
			return r.render(resp, func() error {
				if resp.Protocol != "" {
					r.field("Protocol", resp.Protocol)
					r.field("Contract", resp.ContractTag)
					if len(resp.Interfaces) > 0 {
						r.field("Interfaces", strings.Join(resp.Interfaces, ", "))
					}
				}
				r.field("Address", resp.Address)
				r.line("")
				r.line(resp.Result)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&calls, "call", nil, "call made by the transaction as address:entrypoint[:calldata] (repeatable)")

	return cmd
}

func readMessage(in io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to read error message from stdin")
	}
	return string(data), nil
}

// parseCalls parses --call values of the form address:entrypoint[:calldata].
func parseCalls(values []string) ([]resolver.Call, error) {
	calls := make([]resolver.Call, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, errors.WithContext(
				errors.New(errors.CodeInvalidInput, "call must have the form address:entrypoint[:calldata]"),
				"call", v,
			)
		}

		call := resolver.Call{ContractAddress: parts[0], Entrypoint: parts[1]}
		if len(parts) == 3 && parts[2] != "" {
			call.Calldata = strings.Split(parts[2], ",")
		}
		calls = append(calls, call)
	}
	return calls, nil
}

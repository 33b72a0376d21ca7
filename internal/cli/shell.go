package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// ShellCmd returns the interactive shell command. Each input line is
// parsed into args and dispatched against a fresh root command, so the
// shell behaves exactly like repeated CLI invocations.
func ShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive flightdeck shell",
		Long: `Start an interactive shell. Type any flightdeck command without the
program name, e.g.:

  flightdeck> flights --origin LHR
  flightdeck> flight status BA101 2025-06-05 Delayed
  flightdeck> exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("flightdeck> ")
			if err != nil {
				return fmt.Errorf("failed to start shell: %w", err)
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					break
				}
				if err != nil {
					return err
				}

				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}
				if fields[0] == "exit" || fields[0] == "quit" {
					break
				}
				if fields[0] == "shell" {
					fmt.Println("Already in a shell.")
					continue
				}

				root := NewRootCmd()
				root.SetArgs(fields)
				if err := root.Execute(); err != nil {
					fmt.Printf("Error: %v\n", err)
				}
			}

			fmt.Println("Thank you for using flightdeck")
			return nil
		},
	}
}

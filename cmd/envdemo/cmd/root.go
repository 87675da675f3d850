// Package cmd implements the envdemo CLI commands.
//
// The root command dispatches to subcommands (tree, resolve, simulate,
// version) that build a sample window hierarchy and exercise the
// environment on it.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "envdemo",
	Short: "envdemo - explore environment propagation",
	Long: `envdemo builds a sample window with tabs, a navigation stack and a
modal, then shows how environment values resolve and propagate through it.

Use "envdemo <command> --help" for more information about a command.`,
	Usage: "envdemo [--log-level LEVEL] <command> [flags]",
}

var commands = make(map[string]*Command)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	level := os.Getenv(logLevelEnv)
	var filtered []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--log-level":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-level requires a level")
			}
			level = args[i+1]
			i++
		case strings.HasPrefix(arg, "--log-level="):
			level = strings.TrimPrefix(arg, "--log-level=")
		case len(filtered) == 0 && (arg == "-h" || arg == "--help" || arg == "help"):
			printHelp(rootCmd)
			return nil
		case len(filtered) == 0 && (arg == "-v" || arg == "--version"):
			return runVersion(nil)
		default:
			filtered = append(filtered, arg)
		}
	}
	if err := setupLogging(level); err != nil {
		return err
	}

	if len(filtered) == 0 {
		printHelp(rootCmd)
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --log-level LEVEL    trace, debug, info, warn or error (default: warn)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintf(stdout, "  %-20s Log level (lower priority than --log-level)\n", logLevelEnv)
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// dirFlag extracts --dir from args. The default is the working directory.
func dirFlag(args []string) (string, []string, error) {
	dir := "."
	var rest []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--dir":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("--dir requires a directory path")
			}
			dir = args[i+1]
			i++
		case strings.HasPrefix(arg, "--dir="):
			dir = strings.TrimPrefix(arg, "--dir=")
		default:
			rest = append(rest, arg)
		}
	}
	return dir, rest, nil
}

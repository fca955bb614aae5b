package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/mcptools"
	"github.com/dusk-indust/utilkit/internal/users"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	ServeMCP  bool
	MCPAddr   string
	Verbose   bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("utilkit", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory searched for utilkit.yml")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.StringVar(&flags.MCPAddr, "mcp-addr", "", "serve MCP tools over HTTP on this address")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	logger := log.New(io.Discard, "", 0)
	if flags.Verbose {
		logger = log.New(os.Stderr, "utilkit: ", log.LstdFlags)
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flags.ServeMCP || flags.MCPAddr != "" {
		return serveMCP(flags, logger)
	}

	ctx := context.Background()

	switch cmd := fs.Arg(0); cmd {
	case "", "demo":
		return runDemo(ctx, stdout, cfg, logger)
	case "advanced":
		return runAdvanced(ctx, stdout, logger)
	case "export":
		return runExport(stdout, cfg)
	case "diagram":
		return runDiagram(stdout)
	default:
		return fmt.Errorf("unknown command %q (want demo, advanced, export or diagram)", cmd)
	}
}

func serveMCP(flags cliFlags, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server := mcptools.NewToolkitMCPServer(
		mcptools.NewToolkitService(users.NewManager(users.WithLogger(logger))),
	)

	if flags.MCPAddr != "" {
		logger.Printf("serving MCP over HTTP on %s", flags.MCPAddr)
		return mcptools.RunHTTP(ctx, server, flags.MCPAddr, logger)
	}
	return mcptools.RunStdio(ctx, server)
}

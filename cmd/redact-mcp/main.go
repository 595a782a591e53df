package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/quillsec/redact-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("redact-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("redact-mcp - MCP server for photo redaction")
			fmt.Println()
			fmt.Println("Usage: redact-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  REDACT_MCP_LOG_LEVEL=debug|info|warn|error    Log verbosity (default info)")
			fmt.Println()
			fmt.Println("A .env file in the working directory is loaded if present.")
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Optional .env; absence is fine
	_ = godotenv.Load()

	// Logs go to stderr, stdout carries the MCP protocol
	level, err := zerolog.ParseLevel(os.Getenv("REDACT_MCP_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting redact-mcp")

	srv := server.New(log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv enables debug logging when set to "debug".
const logLevelEnv = "WATERMARK_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:   "watermark",
	Short: "Blend a watermark image into a base image",
	Long: `watermark blends a watermark image into a base image at a chosen opacity,
either once at a given position or tiled over the whole image.

Without a subcommand it asks for its inputs interactively.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runInteractive,
}

func init() {
	addInteractiveFlags(rootCmd)
}

// setupLogging sends log output to stderr; stdout carries prompts and the
// MCP protocol.
func setupLogging(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if debugEnabled() {
		log.Printf("watermark %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
	return nil
}

func debugEnabled() bool {
	return os.Getenv(logLevelEnv) == "debug"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

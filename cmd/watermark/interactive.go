package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-watermark/internal/imaging"
	"github.com/ironsheep/image-watermark/internal/prompt"
	"github.com/spf13/cobra"
)

// errFailed makes the process exit 1 after a message was already shown.
var errFailed = errors.New("watermarking failed")

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Ask for the images and settings on stdin",
	RunE:  runInteractive,
}

func addInteractiveFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Exit with status 1 when an answer is rejected")
	cmd.Flags().Int("jpeg-quality", imaging.DefaultJPEGQuality, "JPEG quality (1-100) for .jpg output")
}

func init() {
	addInteractiveFlags(interactiveCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quality, _ := cmd.Flags().GetInt("jpeg-quality")

	out := cmd.OutOrStdout()
	_, err := prompt.Run(cmd.InOrStdin(), out, imaging.NewImageCache(), imaging.WithJPEGQuality(quality))
	if err == nil {
		return nil
	}

	var perr *prompt.Error
	switch {
	case errors.As(err, &perr):
		fmt.Fprintln(out, perr.Msg)
		if debugEnabled() && perr.Err != nil {
			log.Printf("session stopped: %v", perr.Err)
		}
	case errors.Is(err, prompt.ErrNoInput):
		fmt.Fprintln(os.Stderr, err)
	default:
		return err
	}

	if strict {
		return errFailed
	}
	return nil
}

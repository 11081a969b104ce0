package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/quoter/internal/wizard"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the questionnaire steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSteps(os.Stdout)
	},
}

func printSteps(w io.Writer) error {
	for i, s := range wizard.Steps {
		if _, err := fmt.Fprintf(w, "%2d. %-20s %3d%%  %-20s %s\n",
			i+1, s.ID, wizard.Progress(i), s.Title, s.Description); err != nil {
			return err
		}
	}
	return nil
}

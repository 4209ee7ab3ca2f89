package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"relift/internal/steps"
	"relift/internal/ui"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <file>",
	Short: "Inspect a recorded transform step trace",
	Long:  `Reads a .steps file written by a transform run and shows which transform rewrote which node, with before/after renders`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSteps,
}

func init() {
	stepsCmd.Flags().Bool("interactive", false, "browse steps in a full-screen view")
	stepsCmd.Flags().Int("limit", 0, "show at most N steps (0 = all)")
	stepsCmd.Flags().Bool("diff", false, "print before/after renders for every step")
}

func runSteps(cmd *cobra.Command, args []string) error {
	configureColor(cmd)

	payload, err := steps.ReadFile(args[0])
	if err != nil {
		return err
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		prog := tea.NewProgram(ui.NewStepsModel(payload.Method, payload.Events), tea.WithAltScreen())
		_, err := prog.Run()
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	showDiff, _ := cmd.Flags().GetBool("diff")
	printSteps(payload, limit, showDiff)
	return nil
}

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	transformColor = color.New(color.FgYellow)
	beforeColor    = color.New(color.FgRed)
	afterColor     = color.New(color.FgGreen)
)

func printSteps(payload *steps.FilePayload, limit int, showDiff bool) {
	p := message.NewPrinter(language.English)
	headerColor.Print(payload.Method)
	p.Printf(": %d steps\n", len(payload.Events))

	shown := 0
	for i := range payload.Events {
		if limit > 0 && shown >= limit {
			p.Printf("... %d more\n", len(payload.Events)-shown)
			return
		}
		ev := &payload.Events[i]
		fmt.Printf("%4d  %s  %s  %s\n", ev.Seq, transformColor.Sprint(ev.Transform), ev.NodeKind, ev.Detail)
		if showDiff {
			printIndented(beforeColor, "-", ev.Before)
			printIndented(afterColor, "+", ev.After)
		}
		shown++
	}
}

func printIndented(c *color.Color, prefix, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		c.Printf("      %s %s\n", prefix, line)
	}
}

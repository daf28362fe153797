package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowgenie-backend/internal/catalog"
	"flowgenie-backend/internal/cli/ui"
	"flowgenie-backend/internal/demo"
	"flowgenie-backend/internal/schedule"
	"flowgenie-backend/internal/tui"
)

var printTestimonials bool

// testimonialsCmd shows the testimonial carousel
var testimonialsCmd = &cobra.Command{
	Use:          "testimonials",
	Short:        "browse the rotating testimonials",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTestimonials,
}

func init() {
	testimonialsCmd.Flags().BoolVar(&printTestimonials, "print", false, "print every testimonial and exit")
}

func runTestimonials(cmd *cobra.Command, args []string) error {
	if printTestimonials {
		for _, t := range catalog.Testimonials() {
			fmt.Fprintf(ui.Output, "%q\n", t.Quote)
			ui.PrintInfo("%s, %s", t.Author, t.Role)
		}
		return nil
	}
	if err := requireTerminal("testimonials"); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	carousel, err := demo.NewCarousel(catalog.Testimonials(), schedule.NewClock(), cfg.CarouselInterval)
	if err != nil {
		return fmt.Errorf("failed to create carousel: %w", err)
	}
	if err := tui.NewTestimonials(carousel).Run(); err != nil {
		return fmt.Errorf("failed to run testimonials TUI: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/scene"
)

// newListCmd creates the list command for printing loaded specs with fit
// verdicts.
func newListCmd() *cobra.Command {
	var shower string

	cmd := &cobra.Command{
		Use:   "list [spec-file]...",
		Short: "List bathtub specs with their shower fit verdicts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), args, shower)
		},
	}

	cmd.Flags().StringVar(&shower, "shower", "", "TOML file overriding the shower geometry")
	return cmd
}

// runList prints a table of the readable specs: dimensions, derived corner
// radius, area, and whether each tub fits inside the inner ring. The
// innermost (smallest area) tub is marked, since it is where the baby
// overlay would go.
func runList(ctx context.Context, paths []string, shower string) error {
	specs, err := loadSpecs(ctx, paths)
	if err != nil {
		return err
	}

	g, err := loadGeometry(shower)
	if err != nil {
		return err
	}

	innermost := scene.Innermost(specs)

	fits := make([]bool, len(specs))
	rows := make([][]string, len(specs))
	for i, spec := range specs {
		fits[i] = g.Fits(spec)

		verdict := "fits"
		if !fits[i] {
			verdict = "protrudes"
		}
		marker := ""
		if i == innermost {
			marker = iconArrow
		}
		rows[i] = []string{
			marker,
			spec.Name,
			fmt.Sprintf("%g × %g", spec.WidthCm, spec.HeightCm),
			fmt.Sprintf("%.2f", spec.CornerRadiusCm()),
			fmt.Sprintf("%.0f", spec.AreaCm2()),
			verdict,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Model", "W × H (cm)", "Corner r (cm)", "Area (cm²)", "Fit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(specs) {
				return lipgloss.NewStyle()
			}
			if col == 5 {
				if fits[row] {
					return StyleSuccess
				}
				return StyleWarning
			}
			if row == innermost {
				return lipgloss.NewStyle().Bold(true)
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t)
	printDetail("inner ring %g × %g cm, %s marks the innermost tub", g.InnerRingWidth, g.InnerRingHeight, iconArrow)
	return nil
}

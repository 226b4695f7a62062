package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/textnorm"
	"github.com/allergenlens/backend/internal/usecase"
	"github.com/spf13/cobra"
)

func newDetectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <ingredients...>",
		Short: "Detect allergens in an ingredient list",
		Long: `Detect runs keyword detection over ingredient text without any lookup.
Markup is stripped before matching. With no arguments the text is read from stdin.

Example:
  allergenctl detect "소맥분, 돼지고기, 우유"
  allergenctl detect --json "<p>새우, 게살</p>"
  curl -s https://example.com/label.html | allergenctl detect`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			}

			text := textnorm.Normalize(input)
			result := usecase.NewAllergenDetector().Detect(text)

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printAllergens(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printAllergens(w io.Writer, result domain.DetectionResult) {
	if len(result) == 0 {
		fmt.Fprintln(w, "No allergens detected")
		return
	}
	for _, m := range result {
		fmt.Fprintf(w, "  %s (%s): %s\n", m.Category, m.English, strings.Join(m.Detected, ", "))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

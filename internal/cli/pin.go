package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Pin commands",
	}

	cmd.AddCommand(newPinAddCmd())
	cmd.AddCommand(newPinListCmd())

	return cmd
}

func newPinAddCmd() *cobra.Command {
	var (
		title, desc string
		rating      int
		lat, long   float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Drop a pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Username == "" {
				return fmt.Errorf("not logged in: run 'pindrop user login' or pass --as")
			}

			req := map[string]any{
				"username": cfg.Username,
				"title":    title,
				"desc":     desc,
				"rating":   rating,
				"lat":      lat,
				"long":     long,
			}
			var result Pin

			if err := client.Post("/api/pins", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Pin title (required)")
	cmd.Flags().StringVar(&desc, "desc", "", "Review text")
	cmd.Flags().IntVar(&rating, "rating", 0, "Star rating 1-5")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (required)")
	cmd.Flags().Float64Var(&long, "long", 0, "Longitude (required)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("long")

	return cmd
}

func newPinListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pins",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Pin

			if err := client.Get("/api/pins", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

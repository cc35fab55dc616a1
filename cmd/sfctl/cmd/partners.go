package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func partnersCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "partners",
		Short: "Manage storefront partner logos",
	}

	var image string
	create := &cobra.Command{
		Use:     "create <name>",
		Short:   "Upload a partner logo",
		Example: `  sfctl partners create "Luthieria Sul" --image ./luthieria.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(image)
			if err != nil {
				return fmt.Errorf("opening image: %w", err)
			}
			defer f.Close() //nolint:errcheck // read-only

			contentType := mime.TypeByExtension(filepath.Ext(image))
			p, err := newClient().CreatePartner(cmd.Context(), args[0], filepath.Base(image), contentType, f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Partner %q created with ID %s.\n", p.Name, p.ID)
			return nil
		},
	}
	create.Flags().StringVar(&image, "image", "", "path to the logo image")
	_ = create.MarkFlagRequired("image")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List partners",
			RunE: func(cmd *cobra.Command, _ []string) error {
				partners, err := newClient().ListPartners(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), partners)
				}
				if len(partners) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No partners found.")
					return nil
				}
				return printPartnerTable(cmd.OutOrStdout(), partners)
			},
		},
		create,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a partner",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := newClient().DeletePartner(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Partner %s deleted.\n", args[0])
				return nil
			},
		},
	)

	return root
}

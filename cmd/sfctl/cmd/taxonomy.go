package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List categories with product counts",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cats, err := newClient().ListCategories(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), cats)
				}
				if len(cats) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
					return nil
				}
				return printCategoryTable(cmd.OutOrStdout(), cats)
			},
		},
		&cobra.Command{
			Use:     "create <name>",
			Short:   "Create a category",
			Example: `  sfctl categories create "Guitarras"`,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient().CreateCategory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), c)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Category %q created with ID %s.\n", c.Name, c.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a category; its products become uncategorized",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := newClient().DeleteCategory(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Category %s deleted.\n", args[0])
				return nil
			},
		},
	)

	return root
}

func brandsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brands",
		Short: "Manage product brands",
	}

	var logo string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a brand; the slug is derived from the name",
		Example: `  sfctl brands create "Tagima"
  sfctl brands create "D'Addario" --logo https://cdn.example.com/daddario.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newClient().CreateBrand(cmd.Context(), args[0], logo)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Brand %q created with ID %s (slug %s).\n", b.Name, b.ID, b.Slug)
			return nil
		},
	}
	create.Flags().StringVar(&logo, "logo", "", "logo URL")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List brands with product counts",
			RunE: func(cmd *cobra.Command, _ []string) error {
				brands, err := newClient().ListBrands(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(cmd.OutOrStdout(), brands)
				}
				if len(brands) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No brands found.")
					return nil
				}
				return printBrandTable(cmd.OutOrStdout(), brands)
			},
		},
		create,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a brand; its products become unbranded",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := newClient().DeleteBrand(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Brand %s deleted.\n", args[0])
				return nil
			},
		},
	)

	return root
}

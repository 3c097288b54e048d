package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/client"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Print the role catalog with its conversation starters",
	RunE:  runRoles,
}

func runRoles(cmd *cobra.Command, args []string) error {
	var catalog []advisor.RoleInfo
	if serverURL != "" {
		var err error
		catalog, err = client.New(serverURL).Roles(context.Background())
		if err != nil {
			return fmt.Errorf("fetch roles: %w", err)
		}
	} else {
		catalog = advisor.New().Catalog()
	}

	for i, role := range catalog {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", role.Label, role.ID)
		for _, starter := range role.Starters {
			fmt.Printf("  • %s\n", starter)
		}
	}
	return nil
}

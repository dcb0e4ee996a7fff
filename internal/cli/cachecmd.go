package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/cache"
)

// cacheCommand creates the cache command group for managing the render
// cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheClearCommand())
	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.Cache.Dir
			if dir == "" {
				var err error
				if dir, err = cacheDir(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached render artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := c.newCache(false)
			fc, ok := store.(*cache.FileCache)
			if !ok {
				c.Logger.Info("Cache is disabled, nothing to clear")
				return nil
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			c.Logger.Info("Cleared render cache", "dir", fc.Dir())
			return nil
		},
	}
}

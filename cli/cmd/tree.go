/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/repository"
	"github.com/ponyo877/mockterm/widget/usecase"
)

var (
	expandPaths []string
	expandAll   bool
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Prints the mock file tree.",
	Long: `Prints the mock file tree the way ls reveals it. Folders are collapsed
unless named with --expand (repeatable) or --all is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewRepository()
		expanded := usecase.NewExpandedSet()
		if expandAll {
			expanded = allFolders(repo.Root(), nil)
		}
		for _, key := range expandPaths {
			if !repo.IsFolder(domain.NewPath(key)) {
				return fmt.Errorf("not a folder: %s", key)
			}
			expanded[domain.NewPath(key).String()] = struct{}{}
		}
		for _, row := range usecase.RenderTree(repo.Root(), expanded) {
			fmt.Fprintln(cmd.OutOrStdout(), row.Text())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringArrayVarP(&expandPaths, "expand", "e", nil, "Expand the folder at this path")
	treeCmd.Flags().BoolVarP(&expandAll, "all", "a", false, "Expand every folder")
}

func allFolders(node *domain.Node, prefix domain.Path) usecase.ExpandedSet {
	set := usecase.NewExpandedSet()
	for _, child := range node.Children {
		if !child.IsFolder() {
			continue
		}
		path := prefix.Join(child.Name)
		set[path.String()] = struct{}{}
		for k := range allFolders(child, path) {
			set[k] = struct{}{}
		}
	}
	return set
}

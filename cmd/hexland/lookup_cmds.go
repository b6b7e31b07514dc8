package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

func newIndexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index (X,Y)...",
		Short: "Print the spiral-order index of each coordinate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseCoords(args)
			if err != nil {
				return err
			}
			l, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			for _, c := range cs {
				idx, err := l.Index(cmd.Context(), c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c, idx)
			}
			return nil
		},
	}
}

func newCoordCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coord INDEX...",
		Short: "Print the coordinate with each spiral-order index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			for _, a := range args {
				idx, err := parseIndex(a)
				if err != nil {
					return err
				}
				c, err := l.CoordAt(cmd.Context(), idx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", idx, c)
			}
			return nil
		},
	}
}

func newAdjacentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adjacent (X,Y)",
		Short: "List the neighbours of a coordinate in visit order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCoord(args[0])
			if err != nil {
				return err
			}
			l, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			ns, err := l.Adjacent(cmd.Context(), c)
			if err != nil {
				return err
			}
			for _, n := range ns {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newDistanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance (X,Y) (X,Y)",
		Short: "Print the distance between two coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseCoords(args)
			if err != nil {
				return err
			}
			l, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			d, err := l.Distance(cmd.Context(), cs[0], cs[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func newSpiralCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spiral N",
		Short: "Print the first N coordinates in spiral order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("count %q: %w", args[0], err)
			}
			for i := uint64(0); i < n; i++ {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, coord.SpiralCoord(i))
			}
			return nil
		},
	}
}

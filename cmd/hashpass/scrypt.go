package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gestaozabele/hashsvc/internal/hashing"
)

func newScryptCmd() *cobra.Command {
	var (
		pf          passwordFlags
		cost        uint8
		blockSize   uint32
		parallelism uint32
	)

	cmd := &cobra.Command{
		Use:   "scrypt [senha]",
		Short: "Calcula hash scrypt.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pf.password(cmd, args)
			if err != nil {
				return err
			}

			res, err := newHasher().HashScrypt(hashing.ScryptRequest{
				Password:    &password,
				Salt:        pf.saltPtr(),
				Cost:        cost,
				BlockSize:   blockSize,
				Parallelism: parallelism,
				HashLength:  pf.lengthPtr(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Encoded)
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().Uint8Var(&cost, "cost", 15, "log2(N)")
	cmd.Flags().Uint32Var(&blockSize, "block-size", 8, "tamanho de bloco (r)")
	cmd.Flags().Uint32Var(&parallelism, "parallelism", 1, "paralelismo (p)")
	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/crypto"
)

var keygenOutPath string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a keypair and its address",
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, pub, err := crypto.GenerateKeyPair()
		if err != nil {
			return err
		}
		addr := crypto.AddressFromPublicKey(pub)

		if keygenOutPath != "" {
			if err := os.WriteFile(keygenOutPath, []byte(common.EncodeHex(priv)+"\n"), 0o600); err != nil {
				return err
			}
			fmt.Println("private key written to", keygenOutPath)
		} else {
			fmt.Println("private key:", common.EncodeHex(priv))
		}
		fmt.Println("public key: ", common.EncodeHex(pub))
		fmt.Println("address:    ", common.EncodeBase58(addr))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().StringVar(&keygenOutPath, "out", "", "Write the private key hex to this file instead of stdout")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinderchain/cinder/common"
	"github.com/cinderchain/cinder/config"
	"github.com/cinderchain/cinder/crypto"
	"github.com/cinderchain/cinder/transaction"
)

var (
	sendPrivKeyFile string
	sendReceiver    string
	sendAmount      int32
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Build, sign, and persist a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		if sendPrivKeyFile == "" {
			return fmt.Errorf("--privkey-file is required")
		}
		if sendReceiver == "" {
			return fmt.Errorf("--receiver is required")
		}

		priv, err := config.LoadPrivateKey(sendPrivKeyFile)
		if err != nil {
			return err
		}
		pub, err := crypto.PublicKeyFromPrivate(priv)
		if err != nil {
			return err
		}
		receiverAddr, err := common.DecodeBase58(sendReceiver)
		if err != nil {
			return err
		}

		content := transaction.NewContent(crypto.AddressFromPublicKey(pub), pub, receiverAddr, sendAmount, 0)
		tx, err := transaction.New(content, priv)
		if err != nil {
			return err
		}

		s, err := openPendingStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Insert(tx); err != nil {
			return err
		}
		fmt.Println("pending tx:", common.EncodeHex(tx.ID()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVar(&sendPrivKeyFile, "privkey-file", "", "Path to the sender's hex private key file")
	sendCmd.Flags().StringVar(&sendReceiver, "receiver", "", "Receiver address (base58)")
	sendCmd.Flags().Int32Var(&sendAmount, "amount", 0, "Amount to transfer")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openPendingStore()
		if err != nil {
			return err
		}
		defer s.Close()

		txs, err := s.ListAll()
		if err != nil {
			return err
		}
		for _, tx := range txs {
			ok, err := tx.Verify()
			status := "ok"
			switch {
			case err != nil:
				status = "unparseable"
			case !ok:
				status = "INVALID"
			}
			row := tx.Row()
			fmt.Printf("%s  %s -> %s  amount=%d  ts=%d  [%s]\n",
				row.ID, row.SenderAddr, row.ReceiverAddr, row.Amount, row.Timestamp, status)
		}
		fmt.Printf("%d pending transaction(s)\n", len(txs))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all pending transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openPendingStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Println("pending set cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(clearCmd)
}

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wachat/wachat-bridge/pkg/utils"
)

var (
	flagPort  string
	flagDebug bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wachat-bridge",
	Short: "WhatsApp Cloud API webhook bridge with AI replies",
	Long: `Webhook bridge: recibe mensajes de WhatsApp Cloud API, genera una
respuesta con un servicio de IA y la reenvía al remitente junto con el
multimedia original cuando aplica.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(
		&flagPort,
		"port", "p",
		"",
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagDebug,
		"debug", "d",
		false,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nuts-foundation/doc-signer/api"
	"github.com/nuts-foundation/doc-signer/configuration"
	"github.com/nuts-foundation/doc-signer/pkg"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:              "serve",
	Short:            "Start the doc-signer server",
	Long:             `Start the doc-signer server.`,
	PersistentPreRun: InitConfig,
	Run: func(cmd *cobra.Command, args []string) {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		appConfig, err := configuration.GetInstance()
		if err != nil {
			logrus.WithError(err).Panicf("Could not get config instance")
		}

		backend := pkg.DocSignerInstance()
		backend.Config = pkg.DocSignerConfig{
			Address:         appConfig.HttpAddress,
			PublicURL:       appConfig.PublicUrl,
			DisclosureDelay: appConfig.ParsedDisclosureDelay(),
			KeySize:         appConfig.KeySize,
		}
		if err := backend.Configure(); err != nil {
			logrus.WithError(err).Panicf("Could not configure doc-signer backend")
		}

		apiConfig := &api.Config{
			Address:   appConfig.HttpAddress,
			PublicURL: appConfig.PublicUrl,
			Logger:    logrus.StandardLogger(),
		}
		server := api.New(apiConfig, backend)

		go func() {
			server.Start()
		}()

		<-stop
		server.Shutdown()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

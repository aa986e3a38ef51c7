package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sorucat/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the categorization service as an HTTP API server",
	Long: `Starts an HTTP server exposing the question categorization engine.
Endpoints mirror the reference deployment: POST /categorize, GET /test,
GET /health and GET / for API documentation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err // Error already formatted by GetAppFromContext
		}

		router := gin.Default() // Includes logger and recovery middleware
		router.Use(apihandlers.RequestID())

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		router.POST("/categorize", apiHandler.CategorizeHandler)
		router.GET("/test", apiHandler.TestHandler)
		router.GET("/health", apiHandler.HealthHandler)
		router.GET("/", apiHandler.HomeHandler)

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		port := servePort
		if port == "" {
			port = appInstance.Config.Server.Port
		}
		listenAddr := addr + ":" + port
		log.Infof("Starting categorization API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}

		log.Info("Categorization API server stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (defaults to server.addr from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to server.port from config)")
}

package main

import (
	"fmt"
	"net/http"
	"os"

	"columns-cms/config"
	"columns-cms/logger"
	"columns-cms/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const usage = `usage:
  columns-cms                     start the API server
  columns-cms setrole EMAIL ROLE  set a user's role (Reader, Writer, Coordinator, Moderator)`

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found")
	}
	logger.InitLogger()
	config.LoadJWT()
	cfg := config.LoadApp()

	// Initialize database
	db := config.InitDB()

	if len(os.Args) > 1 {
		if err := runCommand(db, os.Args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if cfg.Env == logger.ProdEnv {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(db, cfg)

	logger.Log.WithField("port", cfg.Port).Info("Server starting")
	if err := http.ListenAndServe(":"+cfg.Port, engine); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}

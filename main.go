package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"blog/config"
	"blog/db"
	"blog/models"
	"blog/templates"
	"blog/utils"
	"blog/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func serve() {
	db.Init()
	models.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	router.SetHTMLTemplate(templates.Load())

	sessionStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	sessionStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, sessionStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	web.Register(router)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

func main() {
	_ = godotenv.Load()
	config.Load()

	rootCmd := &cobra.Command{
		Use:   "blog",
		Short: "Blog server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the web server",
			Run: func(cmd *cobra.Command, args []string) {
				serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema and exit",
			Run: func(cmd *cobra.Command, args []string) {
				db.Init()
				models.Init()
				log.Info("Schema is up to date")
			},
		},
		&cobra.Command{
			Use:   "createuser <username> <email> <password>",
			Short: "Create a user account",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				db.Init()
				models.Init()
				user, err := models.UserCreate(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				log.Infof("Created user %s (id %d)", user.Username, user.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "creategroup <title> <slug> [description]",
			Short: "Create a community group",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				db.Init()
				models.Init()
				description := ""
				if len(args) == 3 {
					description = args[2]
				}
				group, err := models.GroupCreate(args[0], args[1], description)
				if err != nil {
					return err
				}
				log.Infof("Created group %s (/group/%s/)", group.Title, group.Slug)
				return nil
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

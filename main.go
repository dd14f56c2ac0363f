package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/helpnet-api/api"
	"github.com/bitmark-inc/helpnet-api/ratelimit"
	"github.com/bitmark-inc/helpnet-api/schema"
	"github.com/bitmark-inc/helpnet-api/store"
	"github.com/bitmark-inc/helpnet-api/utils"
)

var (
	server     *api.Server
	ormDB      *gorm.DB
	mongoStore store.MongoStore
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpnet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// messageLimiter shares the send quota through redis when it is configured
func messageLimiter() ratelimit.Limiter {
	cfg := ratelimit.Config{
		PerMinute: viper.GetInt("chat.message_rate"),
		Burst:     viper.GetInt("chat.message_burst"),
	}

	if conn := viper.GetString("redis.conn"); conn != "" {
		client, err := ratelimit.Connect(conn)
		if err != nil {
			log.Panicf("connect redis with error: %s", err)
		}
		log.WithField("prefix", "init").Info("Initialized redis message limiter")
		return ratelimit.NewRedisLimiter(client, cfg)
	}

	log.WithField("prefix", "init").Info("Initialized in-memory message limiter")
	return ratelimit.NewMemoryLimiter(cfg)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			mongoStore.Close()
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if key := viper.GetString("map.key"); key != "" {
		utils.InitGeoInfo(key)
		log.WithField("prefix", "init").Info("Initialized geo info client")
	}

	if viper.GetString("i18n.dir") != "" {
		utils.InitI18NBundle()
		log.WithField("prefix", "init").Info("Loaded i18n bundle")
	}

	// Load JWT public key of the identity provider
	jwtPublicKey, err := api.LoadJWTPublicKey(viper.GetString("jwt.pubkeyfile"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded jwt public key")

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.Connect(initialCtx, opts)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	dbName := viper.GetString("mongo.database")
	indexer := schema.NewMongoDBIndexer(mongoClient, dbName)
	if err := indexer.IndexAll(); err != nil {
		log.Panicf("create mongo indexes with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Created mongo indexes")

	mongoStore = store.NewMongoStore(mongoClient, dbName)
	core := store.NewAutonomyStore(store.NewAccountStore(ormDB), mongoStore)

	// Init http server
	server = api.NewServer(
		core,
		indexer,
		jwtPublicKey,
		messageLimiter())
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}

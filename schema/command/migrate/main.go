package main

import (
	"context"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/helpnet-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("helpnet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS helpnet`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO helpnet").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(&schema.Account{}).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Account{}).
		AddIndex("account_rating_idx", "role", "rating_average", "rating_count").Error; err != nil {
		panic(err)
	}
	log.WithField("prefix", "migrate").Info("accounts migrated")

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}
	defer client.Disconnect(ctx)

	if err := schema.NewMongoDBIndexer(client, viper.GetString("mongo.database")).IndexAll(); err != nil {
		panic(err)
	}
	log.WithField("prefix", "migrate").Info("mongo indexes created")
}

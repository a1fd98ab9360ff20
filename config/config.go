// config/config.go
package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// SeedConfig picks where the startup asset collection comes from. Source is
// "file" (default) or "mongo".
type SeedConfig struct {
	Source string `mapstructure:"source"`
	File   string `mapstructure:"file"`
}

type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	DBName     string `mapstructure:"dbName"`
	Collection string `mapstructure:"collection"`
}

type MapConfig struct {
	CenterLat float64 `mapstructure:"centerLat"`
	CenterLng float64 `mapstructure:"centerLng"`
	Zoom      int     `mapstructure:"zoom"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Seed   SeedConfig   `mapstructure:"seed"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Map    MapConfig    `mapstructure:"map"`
	S3     S3Config     `mapstructure:"s3"`
}

// LoadConfig reads config.yaml from the given path and overlays environment
// variables. A missing file is fine; the env vars alone can carry the
// configuration.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("seed.source", "SEED_SOURCE")
	viper.BindEnv("seed.file", "SEED_FILE")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("mongo.collection", "MONGO_COLLECTION")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("seed.source", "file")
	viper.SetDefault("seed.file", "./data/assets.json")
	viper.SetDefault("mongo.collection", "assets")
	viper.SetDefault("map.centerLat", -1.2921)
	viper.SetDefault("map.centerLng", 36.8219)
	viper.SetDefault("map.zoom", 13)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}

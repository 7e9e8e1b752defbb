package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "DigitalForgeX Institute")
	Conf.SetDefault("address", ":8000")
	Conf.SetDefault("secretKey", "x2m(v#+p1q&-g8$=wz7!u)c4h9r%y5t_j3k6n0b@s;d,f.a?e")
	Conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)

	// master admin credential; hash of the DEV password, overridden in deployed envs
	Conf.SetDefault("adminEmail", "admin@test.com")
	Conf.SetDefault("adminPasswordHash", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

	// institute notification inbox
	Conf.SetDefault("defaultFromEmail", "noreply@localhost")
	Conf.SetDefault("instituteEmail", "office@localhost")

	// record store
	Conf.SetDefault("firestoreProjectID", "")
	Conf.SetDefault("firestoreCredentialsFile", "")

	// external services
	Conf.SetDefault("sendgridApiKey", "")
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("build", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	case "QA", "PROD":
		Conf.SetDefault("debug", false)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadConfig carga variables desde .env (si existe) y habilita la lectura
// automática del entorno vía viper.
func LoadConfig(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err == nil {
		logrus.Debugf("[CONFIG] loaded environment from %s", envFile)
	}
	viper.AutomaticEnv()
}
